package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndGet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `server:
  address: "0.0.0.0"
  port: 9090
database:
  path: "data/test.db"
log:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Address != "0.0.0.0" || cfg.Server.Port != 9090 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Database.Path != "data/test.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}

	// sections absent from the file fall back to defaults
	if cfg.Upload.Dir != "data/statements" {
		t.Errorf("upload dir = %q, want default", cfg.Upload.Dir)
	}
	if cfg.Extractor.Binary != "pdftotext" {
		t.Errorf("extractor binary = %q, want default", cfg.Extractor.Binary)
	}

	if Get() != cfg {
		t.Error("Get() did not return the loaded configuration")
	}

	// Load is once-guarded: later calls return the same configuration.
	again, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if again != cfg {
		t.Error("second Load() returned a different configuration")
	}
}
