package aggregator

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akarpov/urlstat/internal/domain"
	"github.com/akarpov/urlstat/internal/parser"
)

var (
	// ErrBudgetExceeded signals that too many lines failed to parse for
	// the report to be trustworthy.
	ErrBudgetExceeded = errors.New("parsing error limit exceeded")
	// ErrNoLines signals an empty or fully unreadable source.
	ErrNoLines = errors.New("no lines in log file")
)

const maxLineSize = 1024 * 1024

// ScanReader consumes r line by line, folding each parse outcome into a
// fresh aggregation. Single forward pass: only the accumulated per-URL
// statistics are retained, never the file itself. Every line counts toward
// the total; lines that fail to parse count toward the failure budget.
func ScanReader(r io.Reader) (*domain.Aggregation, error) {
	agg := domain.NewAggregation()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		parsed, err := parser.ParseLine(line)
		if err != nil {
			agg.ObserveFailure()
			continue
		}
		agg.Observe(parsed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}

	return agg, nil
}

// ScanFile opens the located log file, decompressing transparently when it
// carries a .gz suffix, and scans it to completion. The file handle is
// released on every exit path.
func ScanFile(file domain.LogFile) (*domain.Aggregation, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file.Path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if file.Compressed {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream %s: %w", file.Path, err)
		}
		defer gz.Close()
		r = gz
	}

	return ScanReader(r)
}

// CheckBudget enforces the parse-quality policy on a completed scan. An
// empty source and a failure percentage strictly above limit are both
// fatal for the run; exactly at the limit still passes.
func CheckBudget(agg *domain.Aggregation, limit float64) error {
	if agg.TotalLines == 0 {
		return ErrNoLines
	}
	if rate := agg.FailureRate(); rate > limit {
		return fmt.Errorf("%w: %.1f%% (%d/%d) of lines failed, limit is %.0f%%",
			ErrBudgetExceeded, rate, agg.FailedLines, agg.TotalLines, limit)
	}
	return nil
}
