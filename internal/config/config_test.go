package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/sitetasks/internal/foundation/errors"
)

// isolate runs the test in an empty directory with no SITETASKS_* variables set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	for _, k := range []string{EnvHugoBinary, EnvHugoDir, EnvLogLevel, EnvLogFormat, EnvMetricsFile} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	isolate(t)

	cfg, err := Load("", DefaultPath, false)
	require.NoError(t, err)
	assert.Equal(t, "hugo", cfg.Hugo.Binary)
	assert.Equal(t, LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
	assert.Empty(t, cfg.Metrics.File)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRequiredFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load("", "custom.yaml", true)
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("SITE_HUGO", "/opt/hugo/hugo")

	path := filepath.Join(dir, "sitetasks.yaml")
	writeFile(t, path, `
hugo:
  binary: ${SITE_HUGO}
  dir: site
log:
  level: DEBUG
  format: json
metrics:
  file: /var/lib/node_exporter/sitetasks.prom
`)

	cfg, err := Load("", path, true)
	require.NoError(t, err)
	assert.Equal(t, "/opt/hugo/hugo", cfg.Hugo.Binary)
	assert.Equal(t, "site", cfg.Hugo.Dir)
	assert.Equal(t, LogLevelDebug, cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	assert.Equal(t, "/var/lib/node_exporter/sitetasks.prom", cfg.Metrics.File)
}

func TestLoadEmptyFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sitetasks.yaml")
	writeFile(t, path, "")

	cfg, err := Load("", path, true)
	require.NoError(t, err)
	assert.Equal(t, "hugo", cfg.Hugo.Binary)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sitetasks.yaml")
	writeFile(t, path, "hugo:\n  flags: [\"--minify\"]\n")

	_, err := Load("", path, true)
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sitetasks.yaml")
	writeFile(t, path, "log:\n  level: loud\n")

	_, err := Load("", path, true)
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
	assert.Contains(t, err.Error(), "log.level")
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sitetasks.yaml")
	writeFile(t, path, "hugo:\n  binary: hugo-from-file\nlog:\n  level: error\n")

	t.Setenv(EnvHugoBinary, "hugo-from-env")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load("", path, true)
	require.NoError(t, err)
	assert.Equal(t, "hugo-from-env", cfg.Hugo.Binary)
	assert.Equal(t, LogLevelWarn, cfg.Log.Level)
}

func TestDotEnvFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "SITETASKS_HUGO_BIN=hugo-from-dotenv\nSITETASKS_LOG_FORMAT=json\n")
	t.Cleanup(func() {
		_ = os.Unsetenv(EnvHugoBinary)
		_ = os.Unsetenv(EnvLogFormat)
	})

	cfg, err := Load("", DefaultPath, false)
	require.NoError(t, err)
	assert.Equal(t, "hugo-from-dotenv", cfg.Hugo.Binary)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
}

func TestDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "SITETASKS_HUGO_BIN=hugo-from-dotenv\n")
	t.Setenv(EnvHugoBinary, "hugo-from-shell")

	cfg, err := Load("", DefaultPath, false)
	require.NoError(t, err)
	assert.Equal(t, "hugo-from-shell", cfg.Hugo.Binary)
}

func TestLoadFromSiteDirectory(t *testing.T) {
	cwd := isolate(t)
	site := t.TempDir()
	writeFile(t, filepath.Join(site, DefaultPath), "hugo:\n  binary: site-hugo\n")
	writeFile(t, filepath.Join(site, ".env"), "SITETASKS_LOG_LEVEL=debug\n")
	writeFile(t, filepath.Join(cwd, DefaultPath), "hugo:\n  binary: cwd-hugo\n")
	t.Cleanup(func() { _ = os.Unsetenv(EnvLogLevel) })

	cfg, err := Load(site, DefaultPath, false)
	require.NoError(t, err)
	assert.Equal(t, "site-hugo", cfg.Hugo.Binary)
	assert.Equal(t, LogLevelDebug, cfg.Log.Level)

	other := filepath.Join(cwd, "other.yaml")
	writeFile(t, other, "hugo:\n  binary: explicit-hugo\n")
	cfg, err = Load(site, other, true)
	require.NoError(t, err)
	assert.Equal(t, "explicit-hugo", cfg.Hugo.Binary)
}

func TestLogLevelNormalization(t *testing.T) {
	tests := []struct {
		raw   string
		level LogLevel
		slog  slog.Level
	}{
		{"debug", LogLevelDebug, slog.LevelDebug},
		{" INFO ", LogLevelInfo, slog.LevelInfo},
		{"warning", LogLevelWarn, slog.LevelWarn},
		{"Error", LogLevelError, slog.LevelError},
		{"verbose", "", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.level, NormalizeLogLevel(tt.raw))
			assert.Equal(t, tt.slog, LogLevel(tt.raw).SlogLevel())
		})
	}
}

func TestLogFormatNormalization(t *testing.T) {
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat(" JSON"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat("text"))
	assert.Equal(t, LogFormat(""), NormalizeLogFormat("xml"))
}

func TestValidateMetricsFile(t *testing.T) {
	cfg := Default()
	cfg.Metrics.File = "metrics" + string(filepath.Separator)
	require.Error(t, Validate(cfg))
}
