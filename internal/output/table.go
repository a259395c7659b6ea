package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/akarpov/urlstat/internal/domain"
)

// WriteTable prints a ranked preview of report rows. limit caps the number
// of rows shown (0 means all); the full ranking lives in the HTML report.
func WriteTable(w io.Writer, rows []domain.ReportRow, limit int, styled bool) error {
	shown := rows
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	header := fmt.Sprintf("Top %d URLs by cumulative request time", len(shown))
	if styled {
		header = Styles.Header.Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	table := tablewriter.NewTable(w)
	table.Header("URL", "Count", "Count %", "Time Sum", "Time %", "Time Avg", "Time Max", "Time Med")
	for _, row := range shown {
		if err := table.Append([]string{
			row.URL,
			strconv.Itoa(row.Count),
			formatFloat(row.CountPerc),
			formatFloat(row.TimeSum),
			formatFloat(row.TimePerc),
			formatFloat(row.TimeAvg),
			formatFloat(row.TimeMax),
			formatFloat(row.TimeMed),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

// WriteScanSummary prints the aggregate scan counters after a run.
func WriteScanSummary(w io.Writer, agg *domain.Aggregation, styled bool) error {
	line := fmt.Sprintf("Scanned %d lines: %d parsed, %d failed (%.1f%%)",
		agg.TotalLines, agg.ParsedLines(), agg.FailedLines, agg.FailureRate())
	if styled {
		if agg.FailedLines > 0 {
			line = Styles.Warning.Render(line)
		} else {
			line = Styles.Success.Render(line)
		}
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
