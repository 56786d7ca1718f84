package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings is what the sandbox remembers between runs.
type SavedSettings struct {
	LastLevel  string              `json:"lastLevel"`
	TuningPath string              `json:"tuningPath"`
	WatchTune  bool                `json:"watchTuning"`
	Debug      bool                `json:"debug"`
	Keys       map[string][]string `json:"keys,omitempty"` // action name -> key names
}

const settingsKey = "settings"

// itemStore is the part of gdata.Manager the sandbox uses.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var settingsStore itemStore

// InitPersistence opens the per-user data directory.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "batbounce",
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	settingsStore = m
	return nil
}

// LoadSettings returns the saved settings, or nil, nil when nothing has been
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
