package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akarpov/urlstat/internal/domain"
)

// Placeholder is the token in the HTML template replaced with the
// JSON-serialized report rows.
const Placeholder = "$table_json"

// ErrNoPlaceholder marks a template that cannot receive the row data. This
// is a deployment error, not a data error.
var ErrNoPlaceholder = errors.New("template has no $table_json placeholder")

// Render loads the HTML template from templatePath and substitutes the
// placeholder with the serialized rows. A missing template file or a
// template without the placeholder fails the run.
func Render(templatePath string, rows []domain.ReportRow) ([]byte, error) {
	tpl, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	if !bytes.Contains(tpl, []byte(Placeholder)) {
		return nil, fmt.Errorf("%w: %s", ErrNoPlaceholder, templatePath)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // rows land inside a <script> block, keep URLs readable
	if err := enc.Encode(rows); err != nil {
		return nil, fmt.Errorf("encoding rows: %w", err)
	}
	table := bytes.TrimRight(buf.Bytes(), "\n")

	return bytes.ReplaceAll(tpl, []byte(Placeholder), table), nil
}

// WriteAtomic writes content to path via a temp file in the same directory
// followed by a rename, so a failed run never leaves a truncated report
// behind. The target directory is created when absent.
func WriteAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp report: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name()) // no-op once renamed into place
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting report permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving report into place: %w", err)
	}
	return nil
}
