package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	ioutils "github.com/handiism/bulktag/internal/io"
)

// Settings holds all configuration options.
type Settings struct {
	// Scan settings
	Extensions         []string `json:"extensions"`
	MaxConcurrentLoads int      `json:"max_concurrent_loads"`

	// History settings
	MaxHistory int `json:"max_history"`

	// Save settings
	BackupOriginals bool `json:"backup_originals"`

	// Artwork settings
	ArtworkMaxSize int `json:"artwork_max_size"`

	// Preset settings
	PresetsPath string `json:"presets_path"`
}

// DefaultSettings returns settings with default values.
//
// Presets live under ~/.bulktag/presets.json, matching the layout the
// original desktop utility used.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		Extensions:         []string{".mp3"},
		MaxConcurrentLoads: 8,
		MaxHistory:         50,
		BackupOriginals:    false,
		ArtworkMaxSize:     1000,
		PresetsPath:        filepath.Join(homeDir, ".bulktag", "presets.json"),
	}
}

// Load reads settings from a JSON file. A missing file is not an
// error: defaults are returned so first runs need no setup.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
