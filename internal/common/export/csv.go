package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// Table renders a header plus data rows as CSV. encoding/csv quotes
// fields containing separators, quotes or newlines, so user-entered
// values cannot break row structure.
func Table(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write rows: %w", err)
	}
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename builds a dated attachment name, e.g. "users-2026-08-23.csv".
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", prefix, now.Format("2006-01-02"))
}
