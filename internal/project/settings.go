package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/surmesure/configurator/internal/catalog"
)

// DefaultSettingsPath returns the admin settings file path,
// ~/.surmesure/settings.json.
func DefaultSettingsPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// LoadCatalog builds the runtime catalog: built-in defaults overlaid with
// whatever subset of tables the settings file provides. A missing or
// unreadable file falls back to the defaults entirely; the admin surface
// is versioned separately and may lag behind.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	cat := catalog.Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cat, nil
		}
		return cat, err
	}

	var settings catalog.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return cat, err
	}
	settings.Apply(cat)
	return cat, nil
}

// SaveSettings writes the override set back to disk for the admin panel.
func SaveSettings(path string, settings catalog.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
