package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.InputFasta != "" || c.MinLength != 0 {
		t.Fatalf("expected zero defaults, got %+v", c)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"input_fasta":"in.fasta","output_fasta":"out.fasta","log_level":"debug","min_length":100,"ncbi_cache_ttl_seconds":60}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.InputFasta != "in.fasta" || c.OutputFasta != "out.fasta" {
		t.Fatalf("unexpected paths: %+v", c)
	}
	if c.LogLevel != "debug" || c.MinLength != 100 || c.NcbiCacheTTLSecs != 60 {
		t.Fatalf("unexpected values: %+v", c)
	}
}

func TestLoadConfigBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for broken JSON")
	}
}
