package domain

import "time"

// LogFile identifies the rotated access log resolved by the locator.
type LogFile struct {
	Path       string
	Date       time.Time
	Compressed bool
}

// ReportName returns the deterministic report filename for the log's date.
func (f LogFile) ReportName() string {
	return "report-" + f.Date.Format("2006.01.02") + ".html"
}

// ParsedLine is one successfully parsed access-log line.
type ParsedLine struct {
	URL         string
	RequestTime float64 // seconds
}

// URLStats accumulates request times for a single URL.
type URLStats struct {
	URL     string
	Count   int
	Times   []float64
	TimeSum float64
}

// Add appends one request time. Count == len(Times) and
// TimeSum == sum(Times) hold after every call.
func (s *URLStats) Add(t float64) {
	s.Times = append(s.Times, t)
	s.Count++
	s.TimeSum += t
}

// Aggregation is the result of one full scan of a log file. It is built
// incrementally during the scan and frozen once the scan completes.
type Aggregation struct {
	PerURL      map[string]*URLStats
	TotalLines  int
	FailedLines int
	TotalTime   float64
}

// NewAggregation returns an empty aggregation ready to fold outcomes into.
func NewAggregation() *Aggregation {
	return &Aggregation{PerURL: make(map[string]*URLStats)}
}

// Observe records one successfully parsed line.
func (a *Aggregation) Observe(line ParsedLine) {
	st, ok := a.PerURL[line.URL]
	if !ok {
		st = &URLStats{URL: line.URL}
		a.PerURL[line.URL] = st
	}
	st.Add(line.RequestTime)
	a.TotalTime += line.RequestTime
	a.TotalLines++
}

// ObserveFailure records one line that could not be parsed.
func (a *Aggregation) ObserveFailure() {
	a.TotalLines++
	a.FailedLines++
}

// ParsedLines is the number of lines that parsed successfully.
func (a *Aggregation) ParsedLines() int {
	return a.TotalLines - a.FailedLines
}

// FailureRate is the percentage of lines that failed to parse.
func (a *Aggregation) FailureRate() float64 {
	if a.TotalLines == 0 {
		return 0
	}
	return float64(a.FailedLines) / float64(a.TotalLines) * 100
}

// ReportRow is one URL's derived summary statistics. The JSON keys match
// the table columns the report template expects.
type ReportRow struct {
	URL       string  `json:"url"`
	Count     int     `json:"count"`
	CountPerc float64 `json:"count_perc"`
	TimeSum   float64 `json:"time_sum"`
	TimePerc  float64 `json:"time_perc"`
	TimeAvg   float64 `json:"time_avg"`
	TimeMax   float64 `json:"time_max"`
	TimeMed   float64 `json:"time_med"`
}
