package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/akarpov/urlstat/internal/aggregator"
	"github.com/akarpov/urlstat/internal/config"
	"github.com/akarpov/urlstat/internal/locator"
	"github.com/akarpov/urlstat/internal/logging"
	"github.com/akarpov/urlstat/internal/output"
	"github.com/akarpov/urlstat/internal/report"
)

// previewRows caps the console preview after a successful run.
const previewRows = 10

// ReportCmd runs the full pipeline: locate the latest access log,
// aggregate it under the parse-error budget, and render the ranked HTML
// report.
type ReportCmd struct{}

// Run executes the report command.
func (c *ReportCmd) Run(globals *Globals) error {
	clk := clock.New()
	start := clk.Now()

	cfg, err := config.Load(globals.ConfigPath, globals.ConfigExplicit)
	if err != nil {
		return fail(globals, CodeConfig, err.Error())
	}

	logger, err := logging.New(cfg.LoggingLevel, cfg.LogFile)
	if err != nil {
		return fail(globals, CodeConfig, err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logfile, err := locator.Latest(cfg.LogDir)
	if err != nil {
		if errors.Is(err, locator.ErrNotFound) {
			msg := fmt.Sprintf("no log file matching the naming convention in %s", cfg.LogDir)
			logger.Error(msg)
			return fail(globals, CodeLogNotFound, msg)
		}
		logger.Error("locating log file failed", zap.Error(err))
		return fail(globals, CodeLogNotFound, err.Error())
	}
	logger.Info("latest log file",
		zap.String("path", logfile.Path),
		zap.Time("date", logfile.Date),
		zap.Bool("compressed", logfile.Compressed))

	// Idempotence short-circuit: one report per log date.
	reportPath := filepath.Join(cfg.ReportDir, logfile.ReportName())
	if _, err := os.Stat(reportPath); err == nil {
		logger.Info("report already exists, nothing to do", zap.String("report", reportPath))
		if !globals.Quiet {
			fmt.Fprintf(globals.Stdout, "Report %s already exists, nothing to do\n", reportPath)
		}
		return nil
	}

	agg, err := aggregator.ScanFile(logfile)
	if err != nil {
		logger.Error("scanning log file failed", zap.Error(err))
		return fail(globals, CodeRead, err.Error())
	}
	globals.Debug("scanned %d lines, %d failed", agg.TotalLines, agg.FailedLines)

	if err := aggregator.CheckBudget(agg, cfg.ParsingErrorLimit); err != nil {
		logger.Error("parse quality too low",
			zap.Error(err),
			zap.Int("total_lines", agg.TotalLines),
			zap.Int("failed_lines", agg.FailedLines))
		return fail(globals, CodeParseQuality, err.Error())
	}

	rows := report.BuildRows(agg, cfg.ReportSize)

	html, err := report.Render(cfg.TemplateFilename, rows)
	if err != nil {
		logger.Error("rendering report failed", zap.Error(err))
		return fail(globals, CodeRender, err.Error())
	}
	if err := report.WriteAtomic(reportPath, html); err != nil {
		logger.Error("writing report failed", zap.Error(err))
		return fail(globals, CodeWrite, err.Error())
	}

	logger.Info("report saved",
		zap.String("report", reportPath),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", clk.Since(start)))

	if !globals.Quiet {
		styled := styledStdout(globals)
		if err := output.WriteScanSummary(globals.Stdout, agg, styled); err != nil {
			return err
		}
		if err := output.WriteTable(globals.Stdout, rows, previewRows, styled); err != nil {
			return err
		}
		fmt.Fprintf(globals.Stdout, "Report saved to %s\n", reportPath)
	}
	return nil
}

// styledStdout reports whether stdout is a terminal that can take lipgloss
// styling.
func styledStdout(globals *Globals) bool {
	f, ok := globals.Stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
