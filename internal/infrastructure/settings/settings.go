// Package settings persists player preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Settings are the preferences remembered across runs.
type Settings struct {
	ShowAreas  bool   `json:"showAreas"`
	Camera     string `json:"camera,omitempty"`
	Fullscreen bool   `json:"fullscreen"`
}

// ItemStore reads and writes named blobs.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store loads and saves Settings. Failures are logged and never fatal.
type Store struct {
	items  ItemStore
	logger *log.Logger
}

// Open opens the per-user data directory of app.
func Open(app string, logger *log.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage: %w", err)
	}
	return NewStore(m, logger), nil
}

// NewStore creates a store over items.
func NewStore(items ItemStore, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{items: items, logger: logger}
}

// Load returns the saved settings, or defaults when nothing usable is saved.
func (s *Store) Load(defaults Settings) Settings {
	if s == nil || s.items == nil {
		return defaults
	}
	data, err := s.items.LoadItem(itemKey)
	if err != nil {
		s.logger.Printf("Warning: Could not load settings: %v", err)
		return defaults
	}
	if data == nil {
		return defaults
	}

	saved := defaults
	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.Printf("Warning: Could not parse saved settings: %v", err)
		return defaults
	}
	return saved
}

// Save writes v.
func (s *Store) Save(v Settings) error {
	if s == nil || s.items == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.items.SaveItem(itemKey, data); err != nil {
		s.logger.Printf("Warning: Could not save settings: %v", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
