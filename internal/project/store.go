// Package project persists named configurations and the admin settings as
// JSON files under ~/.surmesure. Storage is an opaque blob from the
// configurator's point of view: it only needs the configuration to encode
// and decode through the config package.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/surmesure/configurator/internal/config"
)

// SavedProject is one stored configuration with its metadata.
type SavedProject struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Family    string          `json:"family"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
	Config    json.RawMessage `json:"config"`
}

// Store holds the saved project collection.
type Store struct {
	Projects []SavedProject `json:"projects"`
}

// NewStore creates an empty project store.
func NewStore() Store {
	return Store{Projects: []SavedProject{}}
}

// Add serializes a configuration under the given name and returns the new
// entry's ID.
func (s *Store) Add(name string, cfg config.Product) (string, error) {
	blob, err := config.Encode(cfg)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	p := SavedProject{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Family:    string(cfg.Family()),
		CreatedAt: now,
		UpdatedAt: now,
		Config:    blob,
	}
	s.Projects = append(s.Projects, p)
	return p.ID, nil
}

// Update replaces the stored configuration of an existing entry.
func (s *Store) Update(id string, cfg config.Product) error {
	for i := range s.Projects {
		if s.Projects[i].ID != id {
			continue
		}
		blob, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		s.Projects[i].Config = blob
		s.Projects[i].Family = string(cfg.Family())
		s.Projects[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		return nil
	}
	return fmt.Errorf("project %q not found", id)
}

// Remove deletes an entry by ID. Returns true if found.
func (s *Store) Remove(id string) bool {
	for i, p := range s.Projects {
		if p.ID == id {
			s.Projects = append(s.Projects[:i], s.Projects[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the entry with the given ID, or nil.
func (s *Store) FindByID(id string) *SavedProject {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// Load decodes the stored configuration of an entry.
func (s *Store) Load(id string) (config.Product, error) {
	p := s.FindByID(id)
	if p == nil {
		return nil, fmt.Errorf("project %q not found", id)
	}
	return config.Decode(p.Config)
}

// Names returns project names for UI lists.
func (s *Store) Names() []string {
	names := make([]string, len(s.Projects))
	for i, p := range s.Projects {
		names[i] = p.Name
	}
	return names
}

// configDir returns ~/.surmesure, creating it if needed.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".surmesure")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultStorePath returns the default saved-projects file path.
func DefaultStorePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "projects.json"), nil
}

// SaveStore writes the project store to a JSON file.
func SaveStore(path string, store Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadStore reads a project store from a JSON file. A missing file yields
// an empty store.
func LoadStore(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}
		return Store{}, err
	}
	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return Store{}, err
	}
	if store.Projects == nil {
		store.Projects = []SavedProject{}
	}
	return store, nil
}
