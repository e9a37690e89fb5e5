package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "surmesure-backup.json")

	store := NewStore()
	if _, err := store.Add("Dressing chambre", config.DefaultMeuble()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	settings := catalog.Settings{
		Hardware: &catalog.Hardware{HingePrice: 4, SlidePrice: 11, ShelfSupportPrice: 1, HandlePrice: 5},
	}

	if err := ExportAllData(path, store, settings); err != nil {
		t.Fatalf("ExportAllData: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData: %v", err)
	}
	if backup.Version == "" || backup.CreatedAt == "" {
		t.Error("backup metadata missing")
	}
	if len(backup.Store.Projects) != 1 || backup.Store.Projects[0].Name != "Dressing chambre" {
		t.Errorf("unexpected store contents: %+v", backup.Store.Projects)
	}
	if backup.Settings.Hardware == nil || backup.Settings.Hardware.HingePrice != 4 {
		t.Errorf("unexpected settings: %+v", backup.Settings)
	}
}

func TestImportAllDataRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := ImportAllData(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"no_version": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(bad); err == nil {
		t.Error("file without a version field should fail")
	}
}
