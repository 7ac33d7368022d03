package cmd

import (
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command.
var resetCmd = newResetCmd()

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Run the reset sweep over every registered shadow",
		Long: `Run every registered reset hook once, as the sandbox does between tests.
All hooks run even when some fail; failures are reported together.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return ui.DisplayReset(sandbox.Hooks(), sandbox.Reset())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
