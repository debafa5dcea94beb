// Package config provides configuration management for bulktag.
//
// Settings are stored as JSON with sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Scans .mp3 files, keeps 50 undo entries, presets under ~/.bulktag
//
//	settings, err := config.Load("/path/to/config.json")
//	// Missing file returns defaults, not an error
package config
