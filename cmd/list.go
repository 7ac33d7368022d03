package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/shadower/internal/config"
	"github.com/mouse-blink/shadower/internal/controller"
	m "github.com/mouse-blink/shadower/internal/model"
)

const listLongDescription = `List every registered shadow with its target type, version range, method
count and reset hook, marking which shadows are active at --sdk.

On a terminal the list opens in an interactive, filterable browser.
With --output yaml the registry is printed as a manifest instead.
With --save the manifest is also written to the manifest directory.`

var listSaveFlag bool
var listDirFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered shadows",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptors := sandbox.Registry().Descriptors()
			manifest := m.ManifestFor(descriptors)

			if listSaveFlag {
				dir := listDirFlag
				if dir == "" {
					dir = cfg.ManifestDir
				}

				path, err := manifestStore.Save(m.Path(dir), manifest)
				if err != nil {
					return err
				}

				logger.Debug("Saved manifest", zap.String("path", string(path)))
				cmd.Printf("Saved manifest %s\n", path)
			}

			if cfg.Output == config.OutputYAML {
				return writeYAML(cmd.OutOrStdout(), manifest)
			}

			rows := make([]controller.ShadowRow, 0, len(descriptors))
			for _, d := range descriptors {
				rows = append(rows, controller.NewShadowRow(d, cfg.SDK))
			}

			if err := ui.Start(controller.WithBrowseMode()); err != nil {
				return err
			}

			if err := ui.DisplayShadows(rows, cfg.SDK); err != nil {
				ui.Close()
				return err
			}

			ui.Wait()

			return nil
		},
	}
	cmd.Flags().BoolVar(&listSaveFlag, "save", false, "write the manifest of registered shadows")
	cmd.Flags().StringVar(&listDirFlag, "dir", "", "manifest directory (default from config manifest_dir)")

	return cmd
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func init() {
	rootCmd.AddCommand(listCmd)
}
