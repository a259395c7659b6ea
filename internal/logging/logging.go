package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the tool's operational logger: the log about the run itself,
// never the parsed data. level is one of the validated configuration
// values; file redirects output away from stderr when set.
func New(level, file string) (*zap.Logger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006.01.02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cfg := zap.Config{
		Encoding:         "console",
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if file != "" {
		cfg.OutputPaths = []string{file}
	}

	switch level {
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.DisableStacktrace = true
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
		cfg.DisableStacktrace = true
	case "exception":
		// Error level with stacktraces attached.
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("unknown logging level %q", level)
	}

	return cfg.Build()
}
