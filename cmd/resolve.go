package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/shadower/internal/controller"
	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
)

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve TYPE",
		Short: "Show the shadow that applies to a type at --sdk",
		Long: `Resolve TYPE at --sdk and print the winning shadow with the method
variants a call would reach. A type without an applicable shadow is
reported as unshadowed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return ui.DisplayResolution(resolve(m.TypeID(args[0]), cfg.SDK))
		},
	}

	return cmd
}

func resolve(t m.TypeID, version int) controller.Resolution {
	res := controller.Resolution{Type: t, Version: version}

	d, ok := sandbox.Resolver().Resolve(t, version)
	if !ok {
		logger.Debug("Resolution miss", zap.String("type", string(t)), zap.Int("sdk", version))
		return res
	}

	res.Shadow = d.Name()
	res.Range = d.Range().String()
	res.Methods = domain.ActiveMethods(d, version)

	return res
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
