package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/surmesure/configurator/internal/catalog"
)

// BackupData bundles everything a workstation stores locally: the saved
// projects and the admin catalog overrides. One file moves an installation
// to another machine.
type BackupData struct {
	Version   string           `json:"version"`
	CreatedAt string           `json:"created_at"`
	Store     Store            `json:"store"`
	Settings  catalog.Settings `json:"settings"`
}

const backupVersion = "1.0.0"

// ExportAllData writes the full local state to a single JSON file.
func ExportAllData(exportPath string, store Store, settings catalog.Settings) error {
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Store:     store,
		Settings:  settings,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file. The caller decides how to apply the
// contained store and settings.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Store.Projects == nil {
		backup.Store.Projects = []SavedProject{}
	}
	return backup, nil
}
