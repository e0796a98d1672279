package store

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Format selects an export encoding.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

// ParseFormat reads a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case string(CSV):
		return CSV, nil
	case string(JSON):
		return JSON, nil
	default:
		return "", fmt.Errorf("unknown export format: %s", name)
	}
}

// Ext is the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

// Filename names an export file for entity written at now, like
// "client_2026-09-01.csv".
func Filename(entity string, now time.Time, format Format) string {
	return fmt.Sprintf("%s_%s.%s", entity, now.Format(time.DateOnly), format.Ext())
}

// Export writes the current view to w.
//
// CSV rows quote string columns, doubling embedded quotes; Raw
// columns are written bare. JSON is the view pretty-printed.
func (s *Store[E]) Export(w io.Writer, format Format) error {
	switch format {
	case CSV:
		return s.exportCSV(w)
	case JSON:
		return s.exportJSON(w)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

func (s *Store[E]) exportCSV(w io.Writer) error {
	headers := make([]string, len(s.config.Columns))
	for i, col := range s.config.Columns {
		headers[i] = col.Header
	}
	if _, err := fmt.Fprintln(w, strings.Join(headers, ",")); err != nil {
		return err
	}

	cells := make([]string, len(s.config.Columns))
	for _, item := range s.view {
		for i, col := range s.config.Columns {
			value := col.Value(item)
			if col.Raw {
				cells[i] = value
			} else {
				cells[i] = `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, ",")); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store[E]) exportJSON(w io.Writer) error {
	buf, err := json.MarshalIndent(s.view, "", "    ")
	if err != nil {
		return err
	}
	if _, err := w.Write(buf); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
