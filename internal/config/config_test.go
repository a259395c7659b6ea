package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, 1000, cfg.ReportSize)
	assert.Equal(t, "./reports", cfg.ReportDir)
	assert.Equal(t, "./log", cfg.LogDir)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "config.yaml", cfg.ConfigFile)
	assert.Equal(t, "info", cfg.LoggingLevel)
	assert.InDelta(t, 50.0, cfg.ParsingErrorLimit, 1e-9)
	assert.Equal(t, "report.html", cfg.TemplateFilename)
}

func TestLoad(t *testing.T) {
	t.Run("loads values from the YAML file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := `
REPORT_SIZE: 25
REPORT_DIR: /srv/reports
LOG_DIR: /var/log/nginx
LOGGING_LEVEL: error
PARSING_ERROR_LIMIT: 10
TEMPLATE_FILENAME: /srv/report.html
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path, true)
		require.NoError(t, err)

		assert.Equal(t, 25, cfg.ReportSize)
		assert.Equal(t, "/srv/reports", cfg.ReportDir)
		assert.Equal(t, "/var/log/nginx", cfg.LogDir)
		assert.Equal(t, "error", cfg.LoggingLevel)
		assert.InDelta(t, 10.0, cfg.ParsingErrorLimit, 1e-9)
		assert.Equal(t, "/srv/report.html", cfg.TemplateFilename)
		assert.Equal(t, path, cfg.ConfigFile)
	})

	t.Run("keeps defaults for keys the file omits", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("REPORT_SIZE: 5\n"), 0o644))

		cfg, err := Load(path, true)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.ReportSize)
		assert.Equal(t, "./log", cfg.LogDir)
		assert.Equal(t, "info", cfg.LoggingLevel)
	})

	t.Run("fails on an explicitly requested missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
		assert.Error(t, err)
	})

	t.Run("falls back to defaults when the default path is missing", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.ReportSize)
	})

	t.Run("fails on invalid YAML", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("REPORT_SIZE: ["), 0o644))

		_, err := Load(path, true)
		assert.Error(t, err)
	})

	t.Run("fails on an invalid LOGGING_LEVEL before any parsing happens", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("LOGGING_LEVEL: debug\n"), 0o644))

		_, err := Load(path, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOGGING_LEVEL")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("environment wins over file values", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("REPORT_SIZE: 5\nLOG_DIR: /from/file\n"), 0o644))

		t.Setenv("URLSTAT_REPORT_SIZE", "7")
		t.Setenv("URLSTAT_LOG_DIR", "/from/env")
		t.Setenv("URLSTAT_PARSING_ERROR_LIMIT", "12.5")

		cfg, err := Load(path, true)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.ReportSize)
		assert.Equal(t, "/from/env", cfg.LogDir)
		assert.InDelta(t, 12.5, cfg.ParsingErrorLimit, 1e-9)
	})

	t.Run("applies on top of defaults when no file exists", func(t *testing.T) {
		t.Setenv("URLSTAT_TEMPLATE_FILENAME", "custom.html")

		cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
		require.NoError(t, err)
		assert.Equal(t, "custom.html", cfg.TemplateFilename)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "level error", mutate: func(c *Config) { c.LoggingLevel = "error" }, wantErr: false},
		{name: "level exception", mutate: func(c *Config) { c.LoggingLevel = "exception" }, wantErr: false},
		{name: "unknown level", mutate: func(c *Config) { c.LoggingLevel = "warn" }, wantErr: true},
		{name: "zero report size", mutate: func(c *Config) { c.ReportSize = 0 }, wantErr: true},
		{name: "negative error limit", mutate: func(c *Config) { c.ParsingErrorLimit = -1 }, wantErr: true},
		{name: "error limit above 100", mutate: func(c *Config) { c.ParsingErrorLimit = 101 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
