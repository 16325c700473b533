package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[world]
entity_capacity = 64

[demo]
spawn_count = 12
scripts_dir = "scripts"

[logging]
level = "debug"
`), "inline")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.World.EntityCapacity != 64 {
		t.Errorf("entity_capacity = %d, want 64", cfg.World.EntityCapacity)
	}
	if cfg.Demo.SpawnCount != 12 {
		t.Errorf("spawn_count = %d, want 12", cfg.Demo.SpawnCount)
	}
	if cfg.Demo.ScriptsDir != "scripts" {
		t.Errorf("scripts_dir = %q, want scripts", cfg.Demo.ScriptsDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	// untouched keys keep their defaults
	if cfg.Logging.Format != "console" {
		t.Errorf("format = %q, want console", cfg.Logging.Format)
	}
	if cfg.Demo.Blueprints != "" {
		t.Errorf("blueprints = %q, want empty", cfg.Demo.Blueprints)
	}
}

func TestParseRejectsNegativeSpawnCount(t *testing.T) {
	if _, err := Parse([]byte("[demo]\nspawn_count = -1\n"), "inline"); err == nil {
		t.Fatal("expected error for negative spawn_count")
	}
}

func TestParseBadTOML(t *testing.T) {
	if _, err := Parse([]byte("[world\n"), "inline"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecs.toml")
	if err := os.WriteFile(path, []byte("[demo]\nspawn_count = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Demo.SpawnCount != 3 {
		t.Errorf("spawn_count = %d, want 3", cfg.Demo.SpawnCount)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
