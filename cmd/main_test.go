package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wm75/gxseq/internal/fasta"
)

func TestSetupRejectsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldFlag, oldCfg, oldLogger := configFlag, cfg, logger
	defer func() { configFlag, cfg, logger = oldFlag, oldCfg, oldLogger }()

	configFlag = path
	if err := setup(); err == nil {
		t.Fatal("expected error for malformed config file")
	}

	// A missing config file is fine and must leave a usable config behind.
	configFlag = filepath.Join(dir, "does-not-exist.json")
	if err := setup(); err != nil {
		t.Fatalf("setup with missing config: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config after setup")
	}
}

func TestLengthsLine(t *testing.T) {
	got := lengthsLine(fasta.NewRecord("id2", "some description", "GGGG"))
	if got != "id2\tsome description\t4" {
		t.Fatalf("unexpected line: %q", got)
	}
	got = lengthsLine(fasta.NewRecord("id3", "", "AAAA"))
	if got != "id3\t\t4" {
		t.Fatalf("unexpected line without desc: %q", got)
	}
}

func TestKeepLength(t *testing.T) {
	tests := []struct {
		n, min, max int
		want        bool
	}{
		{10, 0, 0, true},
		{10, 10, 0, true},
		{9, 10, 0, false},
		{10, 0, 10, true},
		{11, 0, 10, false},
		{5, 3, 8, true},
		{2, 3, 8, false},
		{9, 3, 8, false},
	}
	for _, tc := range tests {
		if got := keepLength(tc.n, tc.min, tc.max); got != tc.want {
			t.Fatalf("keepLength(%d, %d, %d) = %v, want %v", tc.n, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestTimestampWriterPrefixesLines(t *testing.T) {
	var sb strings.Builder
	tw := &timestampWriter{w: &sb}
	if _, err := tw.Write([]byte("hello\nwor")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := sb.String()
	if !strings.HasSuffix(out, " hello\n") {
		t.Fatalf("expected timestamped full line, got %q", out)
	}
	if strings.Contains(out, "wor") {
		t.Fatalf("partial line should stay buffered, got %q", out)
	}
	if _, err := tw.Write([]byte("ld\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.HasSuffix(sb.String(), " world\n") {
		t.Fatalf("expected completed line, got %q", sb.String())
	}
}
