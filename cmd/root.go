// Package cmd provides the root command and CLI setup for shadower.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/shadower/internal/adapter"
	"github.com/mouse-blink/shadower/internal/config"
	"github.com/mouse-blink/shadower/internal/controller"
	"github.com/mouse-blink/shadower/internal/domain"
	"github.com/mouse-blink/shadower/internal/shadows"
)

var manifestStore adapter.ManifestStore
var ui controller.UI
var registerShadows func(*domain.Registry) error

// Populated by PersistentPreRunE.
var (
	cfg     *config.Config
	logger  *zap.Logger
	sandbox *domain.Sandbox
)

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	manifestStore = adapter.NewManifestStore()
	registerShadows = shadows.RegisterAll
}

var configFlag string
var sdkFlag int
var verboseFlag bool
var outputFlag string
var resetPolicyFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "shadower",
		Short: "Inspect and exercise version-gated shadow registries",
		Long: `Shadower inspects the built-in shadow registry: which shadow replaces a
platform type at a simulated SDK version, which of its methods are active,
and whether the registered set still matches a saved manifest.

Settings are read from .shadower.yaml and may be overridden by flags:
  shadower list --sdk 17
  shadower resolve android.os.StatFs --sdk 18
  shadower matrix --from 16 --to 26 -p 4`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", config.DefaultPath, "config file")
	flags.IntVar(&sdkFlag, "sdk", defaults.SDK, "simulated platform version")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&outputFlag, "output", "o", defaults.Output, "output format: table or yaml")
	flags.StringVar(&resetPolicyFlag, "reset-policy", defaults.ResetPolicy, "reset sweep timing: before, after or around")

	return cmd
}

// setup loads configuration, builds the logger and seals the built-in shadow
// registry into a sandbox.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	applyFlagOverrides(cmd, loaded)

	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := loaded.Level()
	if err != nil {
		return err
	}

	if verboseFlag {
		level = zapcore.DebugLevel
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	built, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	policy, err := loaded.Policy()
	if err != nil {
		return err
	}

	reg := domain.NewRegistry(domain.WithRegistryLogger(built))
	if err := registerShadows(reg); err != nil {
		return err
	}

	cfg = loaded
	logger = built
	sandbox = domain.NewSandbox(reg, domain.WithLogger(built), domain.WithResetPolicy(policy))

	return nil
}

func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("sdk") {
		c.SDK = sdkFlag
	}

	if flags.Changed("output") {
		c.Output = outputFlag
	}

	if flags.Changed("reset-policy") {
		c.ResetPolicy = resetPolicyFlag
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
