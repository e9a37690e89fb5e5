package project

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppConfig holds the per-user application preferences, separate from the
// admin catalog settings: window geometry, theme, and session state.
type AppConfig struct {
	WindowWidth    float32  `json:"window_width"`
	WindowHeight   float32  `json:"window_height"`
	Theme          string   `json:"theme"` // "light", "dark", or "" for system
	LastProjectID  string   `json:"last_project_id,omitempty"`
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns the startup defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		WindowWidth:    1400,
		WindowHeight:   800,
		RecentProjects: []string{},
	}
}

// AddRecentProject prepends a project ID to the recent list, dropping
// duplicates and capping at 10 entries.
func (c *AppConfig) AddRecentProject(id string) {
	recent := []string{id}
	for _, r := range c.RecentProjects {
		if r != id && len(recent) < 10 {
			recent = append(recent, r)
		}
	}
	c.RecentProjects = recent
}

// DefaultAppConfigPath returns the application config file path,
// ~/.surmesure/config.json.
func DefaultAppConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SaveAppConfig persists the preferences as JSON, creating missing parent
// directories.
func SaveAppConfig(path string, config AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the preferences. A missing file yields the defaults
// with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	if config.WindowWidth <= 0 || config.WindowHeight <= 0 {
		def := DefaultAppConfig()
		config.WindowWidth = def.WindowWidth
		config.WindowHeight = def.WindowHeight
	}
	return config, nil
}
