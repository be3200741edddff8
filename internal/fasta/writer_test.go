package fasta

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriterWritesCanonicalForm(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	records := []Record{
		NewRecord("id", "desc", "ACGT"),
		NewRecord("id2", "", "TTTT"),
	}
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	want := ">id desc\nACGT\n>id2\nTTTT\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}

	// what the writer emits must parse back to the same records
	got, err := NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(got) != 2 || got[0] != records[0] || got[1] != records[1] {
		t.Fatalf("re-parsed records differ: %+v", got)
	}
}

// brokenWriter fails every write.
type brokenWriter struct{ err error }

func (b brokenWriter) Write(p []byte) (int, error) { return 0, b.err }

func TestWriterLatchesFirstError(t *testing.T) {
	boom := errors.New("pipe closed")
	w := NewWriter(brokenWriter{err: boom})
	// the record is larger than the bufio buffer so the write surfaces
	rec := NewRecord("id", "", strings.Repeat("A", 1<<16))
	if err := w.Write(rec); !errors.Is(err, boom) {
		t.Fatalf("Write = %v, want %v", err, boom)
	}
	if err := w.Write(NewRecord("id2", "", "AC")); !errors.Is(err, boom) {
		t.Fatalf("Write after failure = %v, want latched %v", err, boom)
	}
	if err := w.Error(); !errors.Is(err, boom) {
		t.Fatalf("Error() = %v, want %v", err, boom)
	}
}
