package locator

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/akarpov/urlstat/internal/domain"
)

// ErrNotFound is returned when the log directory holds no file matching the
// rotation naming convention.
var ErrNotFound = errors.New("no matching log file found")

// namePattern matches rotated ui access logs: nginx-access-ui.log-YYYYMMDD
// with an optional .gz suffix. Other suffixes (.bz2, .zip) are not
// recognized and such files are ignored.
var namePattern = regexp.MustCompile(`^nginx-access-ui\.log-(\d{8})(\.gz)?$`)

// Latest scans dir's immediate entries and returns the log file with the
// maximum embedded date. When a plain and a compressed file share the same
// date the plain one wins; remaining ties go to the lexically smallest
// name, so the result is stable. File contents are never opened.
func Latest(dir string) (domain.LogFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.LogFile{}, ErrNotFound
		}
		return domain.LogFile{}, err
	}

	var (
		best  domain.LogFile
		found bool
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := namePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		date, err := time.Parse("20060102", m[1])
		if err != nil {
			// Matched the shape but not a real calendar date (e.g. month 13).
			continue
		}
		candidate := domain.LogFile{
			Path:       filepath.Join(dir, entry.Name()),
			Date:       date,
			Compressed: m[2] != "",
		}
		if !found || better(candidate, best) {
			best = candidate
			found = true
		}
	}

	if !found {
		return domain.LogFile{}, ErrNotFound
	}
	return best, nil
}

func better(a, b domain.LogFile) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if a.Compressed != b.Compressed {
		return !a.Compressed
	}
	return a.Path < b.Path
}
