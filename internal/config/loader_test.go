package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if !cfg.Valid() {
		t.Fatal("default config should be valid")
	}
	if len(cfg.Campaign.Levels) != 8 {
		t.Errorf("default campaign has %d levels, want 8", len(cfg.Campaign.Levels))
	}
	if last := cfg.Campaign.Levels[len(cfg.Campaign.Levels)-1]; last.Target != 65536 {
		t.Errorf("final level target = %d, want 65536", last.Target)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := `
campaign:
  levels:
    - id: 1
      name: "Only Level"
      target: 2048
render:
  use_color: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if len(cfg.Campaign.Levels) != 1 || cfg.Campaign.Levels[0].Target != 2048 {
		t.Errorf("unexpected campaign: %+v", cfg.Campaign)
	}
	if cfg.Render.UseColor {
		t.Error("use_color should be false")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("campaign: ["), 0o600); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	descending := filepath.Join(dir, "desc.yaml")
	content := `
campaign:
  levels:
    - {id: 1, name: "a", target: 2048}
    - {id: 2, name: "b", target: 1024}
`
	if err := os.WriteFile(descending, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}
	if _, err := Load(descending); err == nil {
		t.Error("descending targets should fail validation")
	}
}

func TestDefaultGameConfigValid(t *testing.T) {
	if !DefaultGameConfig().Valid() {
		t.Error("hardcoded default must be valid")
	}
}
