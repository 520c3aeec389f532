package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadCompilesRegexesAndDefaults(t *testing.T) {
	path := writeTempConfig(t, `
dataset: HDFS
filters:
  - 'blk_(|-)[0-9]+'
delimiters:
  - ','
logFormat: '<Date> <Time> <Content>'
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine.DownThreshold != 2 {
		t.Fatalf("DownThreshold = %d, want default 2", cfg.Engine.DownThreshold)
	}
	if len(cfg.Engine.FilterRegexes) != 1 || len(cfg.Engine.DelimiterRegexes) != 1 {
		t.Fatalf("unexpected regex counts: %+v", cfg.Engine)
	}
	if cfg.Engine.Dataset != "HDFS" {
		t.Fatalf("Dataset = %q", cfg.Engine.Dataset)
	}
}

func TestLoadInvalidRegexIsConfigurationError(t *testing.T) {
	path := writeTempConfig(t, `
filters:
  - '('
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid filter regex")
	}
}

func TestLoadMissingFileIsConfigurationError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
