package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// DefaultPath is the config file read when -c/--config is not given.
const DefaultPath = "config.yaml"

// Config holds the full run configuration. Field names match the YAML
// keys one to one; the struct is built once and passed down, never
// mutated afterwards.
type Config struct {
	ReportSize        int     `mapstructure:"REPORT_SIZE"`
	ReportDir         string  `mapstructure:"REPORT_DIR"`
	LogDir            string  `mapstructure:"LOG_DIR"`
	LogFile           string  `mapstructure:"LOG_FILE"`
	ConfigFile        string  `mapstructure:"CONFIG_FILE"`
	LoggingLevel      string  `mapstructure:"LOGGING_LEVEL"`
	ParsingErrorLimit float64 `mapstructure:"PARSING_ERROR_LIMIT"`
	TemplateFilename  string  `mapstructure:"TEMPLATE_FILENAME"`
}

// Default returns a Config with the documented defaults.
func Default() *Config {
	return &Config{
		ReportSize:        1000,
		ReportDir:         "./reports",
		LogDir:            "./log",
		LogFile:           "",
		ConfigFile:        DefaultPath,
		LoggingLevel:      "info",
		ParsingErrorLimit: 50,
		TemplateFilename:  "report.html",
	}
}

// Load resolves the effective configuration: defaults, overridden by the
// YAML file at path, overridden by URLSTAT_* environment variables. A
// missing file is tolerated only for the implicit default path; a file
// requested explicitly via -c must exist.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.ConfigFile = path

	applyEnvOverrides(cfg)
	return cfg, cfg.Validate()
}

// applyEnvOverrides applies URLSTAT_* variables on top of the file values.
// An optional .env file in the working directory is honored first.
func applyEnvOverrides(cfg *Config) {
	_ = godotenv.Load() // absent .env is the normal case

	if v := os.Getenv("URLSTAT_REPORT_SIZE"); v != "" {
		cfg.ReportSize = cast.ToInt(v)
	}
	if v := os.Getenv("URLSTAT_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}
	if v := os.Getenv("URLSTAT_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("URLSTAT_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("URLSTAT_LOGGING_LEVEL"); v != "" {
		cfg.LoggingLevel = v
	}
	if v := os.Getenv("URLSTAT_PARSING_ERROR_LIMIT"); v != "" {
		cfg.ParsingErrorLimit = cast.ToFloat64(v)
	}
	if v := os.Getenv("URLSTAT_TEMPLATE_FILENAME"); v != "" {
		cfg.TemplateFilename = v
	}
}

// Validate rejects configurations the run could not honor. It runs before
// any log parsing begins.
func (c *Config) Validate() error {
	switch c.LoggingLevel {
	case "info", "error", "exception":
	default:
		return fmt.Errorf("invalid LOGGING_LEVEL %q: choose one of info, error, exception", c.LoggingLevel)
	}
	if c.ReportSize <= 0 {
		return fmt.Errorf("REPORT_SIZE must be positive, got %d", c.ReportSize)
	}
	if c.ParsingErrorLimit < 0 || c.ParsingErrorLimit > 100 {
		return fmt.Errorf("PARSING_ERROR_LIMIT must be within [0, 100], got %v", c.ParsingErrorLimit)
	}
	return nil
}
