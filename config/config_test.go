package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadref/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.DefaultPathLengthTolerance, cfg.PathLengthTolerance)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.False(t, cfg.Tracing.Enabled)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	p := writeFile(t, "roadref.yaml", `
path_length_tolerance: 0.15
log:
  level: debug
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, 0.15, cfg.PathLengthTolerance)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
}

func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"zero tolerance": "path_length_tolerance: 0",
		"above one":      "path_length_tolerance: 1.5",
		"bad level":      "log: {level: loud}",
		"bad format":     "log: {format: xml}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "c.yaml", body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(writeFile(t, "c.yaml", "path_length_tolerance: [oops"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	p := writeFile(t, "roadref.yaml", "path_length_tolerance: 0.2\n")
	t.Setenv(config.EnvPathLengthTolerance, "0.4")
	t.Setenv(config.EnvLogFormat, "JSON")
	t.Setenv(config.EnvTracingEnabled, "true")

	cfg, err := config.LoadWithEnv(p, "")
	require.NoError(t, err)
	require.Equal(t, 0.4, cfg.PathLengthTolerance)
	require.Equal(t, "json", cfg.Log.Format)
	require.True(t, cfg.Tracing.Enabled)
}

func TestLoadWithEnv_DotEnvFile(t *testing.T) {
	env := writeFile(t, ".env", "ROADREF_LOG_LEVEL=warn\n")
	t.Cleanup(func() { _ = os.Unsetenv(config.EnvLogLevel) })

	cfg, err := config.LoadWithEnv("", env)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadWithEnv_BadValues(t *testing.T) {
	t.Setenv(config.EnvPathLengthTolerance, "abc")
	_, err := config.LoadWithEnv("", "")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv(config.EnvPathLengthTolerance, "2")
	_, err = config.LoadWithEnv("", "")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger = config.NewLogger(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	logger.Debug("dbg")
	require.Contains(t, buf.String(), "msg=dbg")
}
