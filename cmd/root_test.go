package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/shadower/internal/adapter"
	"github.com/mouse-blink/shadower/internal/controller"
	controllermocks "github.com/mouse-blink/shadower/internal/controller/mocks"
	"github.com/mouse-blink/shadower/internal/domain"
	"github.com/mouse-blink/shadower/internal/platform"
	"github.com/mouse-blink/shadower/internal/shadows"
)

// newTestRoot builds a root command with the given subcommands and restores
// every overridable package dependency when the test ends.
func newTestRoot(t *testing.T, sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	originalUI, originalStore, originalRegister := ui, manifestStore, registerShadows
	t.Cleanup(func() {
		ui, manifestStore, registerShadows = originalUI, originalStore, originalRegister
	})

	var buf bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(sub...)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return cmd, &buf
}

// run executes args against cmd with a config path that does not exist, so
// only defaults and flags apply.
func run(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()

	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml")))

	return cmd.Execute()
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "shadower", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"config", "sdk", "verbose", "output", "reset-policy"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing --%s", name)
	}
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, manifestStore)
	assert.NotNil(t, registerShadows)

	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"list", "resolve", "matrix", "reset", "verify"})
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	cmd, _ := newTestRoot(t, newResolveCmd())

	mockUI := controllermocks.NewMockUI(t)
	ui = mockUI
	mockUI.EXPECT().DisplayResolution(mock.Anything).Return(nil)

	err := run(t, cmd, "resolve", string(platform.StatFsType), "--sdk", "17", "--reset-policy", "around", "-v")
	require.NoError(t, err)

	assert.Equal(t, 17, cfg.SDK)
	assert.Equal(t, domain.ResetAround, sandbox.Policy())
	assert.True(t, sandbox.Registry().Sealed())
	assert.NotNil(t, logger)
}

func TestSetup_ReadsConfigFile(t *testing.T) {
	cmd, _ := newTestRoot(t, newResolveCmd())

	mockUI := controllermocks.NewMockUI(t)
	ui = mockUI
	mockUI.EXPECT().DisplayResolution(mock.MatchedBy(func(res controller.Resolution) bool {
		return res.Version == 18
	})).Return(nil)

	path := filepath.Join(t.TempDir(), "shadower.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sdk: 18\nreset_policy: after\n"), 0o600))

	cmd.SetArgs([]string{"resolve", string(platform.StatFsType), "--config", path})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, domain.ResetAfter, sandbox.Policy())
}

func TestSetup_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative sdk", []string{"--sdk=-1"}},
		{"unknown output", []string{"--output", "xml"}},
		{"unknown policy", []string{"--reset-policy", "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newTestRoot(t, newResetCmd())
			ui = controllermocks.NewMockUI(t)

			require.Error(t, run(t, cmd, append([]string{"reset"}, tt.args...)...))
		})
	}
}

func TestSetup_RegistrationFailure(t *testing.T) {
	cmd, _ := newTestRoot(t, newResetCmd())
	ui = controllermocks.NewMockUI(t)

	boom := errors.New("boom")
	registerShadows = func(*domain.Registry) error { return boom }

	require.ErrorIs(t, run(t, cmd, "reset"), boom)
}

func TestSetup_RealManifestStoreByDefault(t *testing.T) {
	_, ok := manifestStore.(*adapter.LocalManifestStore)
	assert.True(t, ok, "manifestStore is %T", manifestStore)
}

func TestSetup_UsesBuiltInShadows(t *testing.T) {
	cmd, _ := newTestRoot(t, newResetCmd())

	mockUI := controllermocks.NewMockUI(t)
	ui = mockUI
	mockUI.EXPECT().DisplayReset(2, nil).Return(nil)

	require.NoError(t, run(t, cmd, "reset"))
	assert.Equal(t, len(shadows.Catalog()), sandbox.Registry().Len())
}
