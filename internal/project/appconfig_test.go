package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultAppConfig()
	cfg.WindowWidth = 1600
	cfg.Theme = "dark"
	cfg.LastProjectID = "abc123"
	cfg.RecentProjects = []string{"abc123", "def456"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig: %v", err)
	}
	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}

	if loaded.WindowWidth != 1600 {
		t.Errorf("expected width 1600, got %.0f", loaded.WindowWidth)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected theme dark, got %q", loaded.Theme)
	}
	if loaded.LastProjectID != "abc123" {
		t.Errorf("expected last project abc123, got %q", loaded.LastProjectID)
	}
	if len(loaded.RecentProjects) != 2 {
		t.Errorf("expected 2 recent projects, got %d", len(loaded.RecentProjects))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should yield defaults: %v", err)
	}
	if cfg.WindowWidth != 1400 || cfg.WindowHeight != 800 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should never be nil")
	}
}

func TestLoadAppConfigSanitizesGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"window_width": -5, "window_height": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if cfg.WindowWidth != 1400 || cfg.WindowHeight != 800 {
		t.Errorf("invalid geometry should reset to defaults, got %+v", cfg)
	}
}

func TestAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()
	for _, id := range []string{"a", "b", "c", "b"} {
		cfg.AddRecentProject(id)
	}
	if len(cfg.RecentProjects) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(cfg.RecentProjects))
	}
	if cfg.RecentProjects[0] != "b" {
		t.Errorf("most recent should be first, got %v", cfg.RecentProjects)
	}
	for i := 0; i < 20; i++ {
		cfg.AddRecentProject(string(rune('a' + i)))
	}
	if len(cfg.RecentProjects) > 10 {
		t.Errorf("recent list should cap at 10, got %d", len(cfg.RecentProjects))
	}
}
