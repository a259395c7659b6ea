package report

import (
	"sort"

	"github.com/akarpov/urlstat/internal/domain"
)

// BuildRows derives one ReportRow per URL from a completed aggregation,
// ranks the rows by cumulative request time (slowest first, URL ascending
// on ties), and truncates the result to size. count_perc is relative to
// the successfully parsed lines; time_perc to the total request time.
func BuildRows(agg *domain.Aggregation, size int) []domain.ReportRow {
	parsed := agg.ParsedLines()

	rows := make([]domain.ReportRow, 0, len(agg.PerURL))
	for _, st := range agg.PerURL {
		row := domain.ReportRow{
			URL:     st.URL,
			Count:   st.Count,
			TimeSum: st.TimeSum,
			TimeAvg: st.TimeSum / float64(st.Count),
			TimeMax: maxTime(st.Times),
			TimeMed: median(st.Times),
		}
		if parsed > 0 {
			row.CountPerc = float64(st.Count) / float64(parsed) * 100
		}
		if agg.TotalTime > 0 {
			row.TimePerc = st.TimeSum / agg.TotalTime * 100
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TimeSum != rows[j].TimeSum {
			return rows[i].TimeSum > rows[j].TimeSum
		}
		return rows[i].URL < rows[j].URL
	})

	if len(rows) > size {
		rows = rows[:size]
	}
	return rows
}

func maxTime(times []float64) float64 {
	m := times[0]
	for _, t := range times[1:] {
		if t > m {
			m = t
		}
	}
	return m
}

// median returns the middle value of times; for an even count it is the
// mean of the two middle values after sorting.
func median(times []float64) float64 {
	s := make([]float64, len(times))
	copy(s, times)
	sort.Float64s(s)

	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}
