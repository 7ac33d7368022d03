package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/shadower/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shadower.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
sdk: 18
reset_policy: around
parallel: 4
output: yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18, cfg.SDK)
	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep their default")

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, domain.ResetAround, policy)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvSDK, "21")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(writeConfig(t, "sdk: 18\n"))
	require.NoError(t, err)

	assert.Equal(t, 21, cfg.SDK)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}

func TestLoad_InvalidEnvSDK(t *testing.T) {
	t.Setenv(EnvSDK, "oreo")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSDK)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "sdk: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative sdk", func(c *Config) { c.SDK = -1 }, "invalid sdk"},
		{"zero parallel", func(c *Config) { c.Parallel = 0 }, "invalid parallel"},
		{"unknown policy", func(c *Config) { c.ResetPolicy = "sometimes" }, "unknown reset policy"},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"unknown output", func(c *Config) { c.Output = "xml" }, "invalid output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_NegativeSDKWrapsInvalidVersion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SDK = -3

	require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidVersion)
}
