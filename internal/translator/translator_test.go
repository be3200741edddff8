package translator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wm75/gxseq/internal/fasta"
)

func TestTranslateRecordsNoTool(t *testing.T) {
	res, err := TranslateRecords([]fasta.Record{fasta.NewRecord("id", "", "ATG")}, "", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("expected empty result without a tool, got %v", res)
	}
}

func TestTranslateRecordsStubTool(t *testing.T) {
	// stand-in for seqkit that emits a fixed protein record
	dir := t.TempDir()
	tool := filepath.Join(dir, "seqkit")
	script := "#!/bin/sh\nprintf '>p1\\nMKV\\n'\n"
	if err := os.WriteFile(tool, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub tool: %v", err)
	}

	records := []fasta.Record{
		fasta.NewRecord("id", "desc", "ATGAAAGTT"),
	}
	res, err := TranslateRecords(records, tool, 5*time.Second)
	if err != nil {
		t.Fatalf("TranslateRecords failed: %v", err)
	}
	if res[0] != "MKV" {
		t.Fatalf("expected MKV for record 0, got %v", res)
	}
}
