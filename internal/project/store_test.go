package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

func TestStoreAddUpdateRemove(t *testing.T) {
	store := NewStore()

	id, err := store.Add("Bibliothèque", config.DefaultMeuble())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id == "" {
		t.Fatal("Add returned an empty ID")
	}
	if len(store.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(store.Projects))
	}
	p := store.FindByID(id)
	if p == nil || p.Name != "Bibliothèque" || p.Family != "meuble" {
		t.Fatalf("unexpected entry: %+v", p)
	}

	cfg := config.DefaultMeuble()
	cfg.Cabinets[0].Width = 1200
	cfg.NormalizeLayout()
	if err := store.Update(id, cfg); err != nil {
		t.Fatalf("Update: %v", err)
	}
	loaded, err := store.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.(*config.MeubleConfig).Cabinets[0].Width != 1200 {
		t.Error("update did not persist the new width")
	}

	if err := store.Update("missing", cfg); err == nil {
		t.Error("Update of an unknown ID should fail")
	}
	if !store.Remove(id) {
		t.Error("Remove should find the entry")
	}
	if store.Remove(id) {
		t.Error("double Remove should report not found")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")

	store := NewStore()
	if _, err := store.Add("Cuisine été", config.DefaultCuisine()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := store.Add("Plan bureau", config.DefaultPlanche()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := SaveStore(path, store); err != nil {
		t.Fatalf("SaveStore: %v", err)
	}

	loaded, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if len(loaded.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(loaded.Projects))
	}
	names := loaded.Names()
	if names[0] != "Cuisine été" || names[1] != "Plan bureau" {
		t.Errorf("unexpected names: %v", names)
	}
	cfg, err := loaded.Load(loaded.Projects[0].ID)
	if err != nil {
		t.Fatalf("Load config: %v", err)
	}
	if cfg.Family() != config.FamilyCuisine {
		t.Errorf("expected cuisine, got %q", cfg.Family())
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	store, err := LoadStore(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if store.Projects == nil || len(store.Projects) != 0 {
		t.Errorf("expected an empty store, got %+v", store)
	}
}

func TestLoadStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStore(path); err == nil {
		t.Error("corrupt file should fail to load")
	}
}

func TestLoadCatalogOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	settings := `{
		"materials": {"chene": {"key": "chene", "name": "Chêne massif", "price_per_sqm": 99, "edge_per_m": 2, "color": "#B8860B"}},
		"hardware": {"hinge_price": 5, "slide_price": 12, "shelf_support_price": 1.5, "handle_price": 6}
	}`
	if err := os.WriteFile(path, []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if got := cat.MaterialPrice("chene"); got != 99 {
		t.Errorf("override should apply, got %.0f", got)
	}
	if got := cat.MaterialPrice("noyer"); got != 65 {
		t.Errorf("untouched entries should keep defaults, got %.0f", got)
	}
	if cat.Hardware.HingePrice != 5 {
		t.Errorf("hardware override should apply, got %.2f", cat.Hardware.HingePrice)
	}
}

func TestLoadCatalogMissingFileFallsBack(t *testing.T) {
	cat, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing settings should not be an error: %v", err)
	}
	if cat.MaterialPrice("chene") != 45 {
		t.Error("defaults should apply without a settings file")
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	hinge := 4.25
	err := SaveSettings(path, catalog.Settings{
		Hardware: &catalog.Hardware{HingePrice: hinge, SlidePrice: 12, ShelfSupportPrice: 1.5, HandlePrice: 6},
	})
	if err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if cat.Hardware.HingePrice != hinge {
		t.Errorf("expected hinge price %.2f, got %.2f", hinge, cat.Hardware.HingePrice)
	}
}
