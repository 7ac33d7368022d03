package cmd

import (
	"errors"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/shadower/internal/model"
)

// ErrManifestDrift is returned by verify when the registered shadows differ
// from the saved manifest.
var ErrManifestDrift = errors.New("registered shadows differ from manifest")

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify FILE",
		Short: "Compare registered shadows with a saved manifest",
		Long: `Load a manifest written by "list --save" and compare it with the shadows
registered in this build. Any difference is printed and fails the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			saved, err := manifestStore.Load(m.Path(args[0]))
			if err != nil {
				return err
			}

			current := m.ManifestFor(sandbox.Registry().Descriptors())

			diff := cmp.Diff(saved, current, cmpopts.EquateEmpty())
			if err := ui.DisplayDrift(diff); err != nil {
				return err
			}

			if diff != "" {
				return ErrManifestDrift
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
