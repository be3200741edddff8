package fasta

import (
	"bufio"
	"io"
)

// Writer emits FASTA records to a buffered destination using the
// canonical single-line projection of Record.String. The first write
// error is latched and returned by every later call.
type Writer struct {
	dst *bufio.Writer
	err error
}

// NewWriter returns a Writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{dst: bufio.NewWriter(w)}
}

// Write emits a single record.
func (w *Writer) Write(rec Record) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.dst.WriteString(rec.String()); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll writes records in order, stopping at the first error.
func (w *Writer) WriteAll(records []Record) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	return w.err
}
