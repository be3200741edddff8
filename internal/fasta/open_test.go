package fasta

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	if err := os.WriteFile(path, []byte(sampleInput), 0o644); err != nil {
		t.Fatalf("write temp fasta: %v", err)
	}

	rc, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer rc.Close()

	records, err := NewReader(rc).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestOpenGzipFile(t *testing.T) {
	// no .gz suffix on purpose: detection must work from the magic bytes
	path := filepath.Join(t.TempDir(), "in.fasta")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte(sampleInput)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("file close: %v", err)
	}

	rc, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read decompressed data: %v", err)
	}
	if err := rc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if string(data) != sampleInput {
		t.Fatalf("decompressed data differs from original")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.fasta")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
