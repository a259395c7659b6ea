package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/akarpov/urlstat/internal/domain"
	"github.com/akarpov/urlstat/internal/output"
)

// InspectCmd previews the rows embedded in a previously rendered report
// without regenerating anything.
type InspectCmd struct {
	File string `arg:"" required:"" help:"Rendered report HTML file"`
	Top  int    `default:"10" help:"Number of rows to show"`
}

// tablePattern finds the row array the renderer substituted into the
// template's script block.
var tablePattern = regexp.MustCompile(`var table = (\[.*\]);`)

// Run executes the inspect command.
func (c *InspectCmd) Run(globals *Globals) error {
	content, err := os.ReadFile(c.File)
	if err != nil {
		return fail(globals, CodeInspect, fmt.Sprintf("cannot read report: %s", err))
	}

	m := tablePattern.FindSubmatch(content)
	if m == nil {
		return fail(globals, CodeInspect, "no embedded report table found")
	}
	raw := string(m[1])
	if !gjson.Valid(raw) {
		return fail(globals, CodeInspect, "embedded report table is not valid JSON")
	}

	var rows []domain.ReportRow
	for _, r := range gjson.Parse(raw).Array() {
		rows = append(rows, domain.ReportRow{
			URL:       r.Get("url").String(),
			Count:     int(r.Get("count").Int()),
			CountPerc: r.Get("count_perc").Float(),
			TimeSum:   r.Get("time_sum").Float(),
			TimePerc:  r.Get("time_perc").Float(),
			TimeAvg:   r.Get("time_avg").Float(),
			TimeMax:   r.Get("time_max").Float(),
			TimeMed:   r.Get("time_med").Float(),
		})
		if c.Top > 0 && len(rows) == c.Top {
			break
		}
	}

	return output.WriteTable(globals.Stdout, rows, c.Top, styledStdout(globals))
}
