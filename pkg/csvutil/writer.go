// Package csvutil writes typed rows as RFC 4180 CSV through a column
// mapping, so export endpoints declare columns once instead of hand-rolling
// string slices per call site.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Column maps a header name to a value extractor for rows of type T.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Writer streams rows of T as CSV. The header row is written lazily before
// the first record.
type Writer[T any] struct {
	w           *csv.Writer
	columns     []Column[T]
	wroteHeader bool
}

// NewWriter creates a CSV writer over the given columns.
func NewWriter[T any](w io.Writer, columns []Column[T]) *Writer[T] {
	return &Writer[T]{w: csv.NewWriter(w), columns: columns}
}

// Write emits one row, writing the header first if needed.
func (cw *Writer[T]) Write(row T) error {
	if !cw.wroteHeader {
		headers := make([]string, len(cw.columns))
		for i, c := range cw.columns {
			headers[i] = c.Header
		}
		if err := cw.w.Write(headers); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		cw.wroteHeader = true
	}

	record := make([]string, len(cw.columns))
	for i, c := range cw.columns {
		record[i] = c.Value(row)
	}
	if err := cw.w.Write(record); err != nil {
		return fmt.Errorf("failed to write CSV record: %w", err)
	}
	return nil
}

// WriteAll emits every row and flushes.
func (cw *Writer[T]) WriteAll(rows []T) error {
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// Flush writes buffered data to the underlying writer.
func (cw *Writer[T]) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
