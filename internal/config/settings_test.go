package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if len(s.Extensions) != 1 || s.Extensions[0] != ".mp3" {
		t.Errorf("Extensions = %v", s.Extensions)
	}
	if s.MaxConcurrentLoads != 8 {
		t.Errorf("MaxConcurrentLoads = %d", s.MaxConcurrentLoads)
	}
	if s.MaxHistory != 50 {
		t.Errorf("MaxHistory = %d", s.MaxHistory)
	}
	if s.BackupOriginals {
		t.Error("BackupOriginals should default to false")
	}
	if s.PresetsPath == "" {
		t.Error("PresetsPath should have a default")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.MaxHistory != 50 {
		t.Errorf("MaxHistory = %d, want default", s.MaxHistory)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"max_history": 5}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.MaxHistory != 5 {
		t.Errorf("MaxHistory = %d, want 5", s.MaxHistory)
	}
	if s.MaxConcurrentLoads != 8 {
		t.Errorf("MaxConcurrentLoads = %d, want default kept", s.MaxConcurrentLoads)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.json")

	in := DefaultSettings()
	in.Extensions = []string{".mp3", ".flac"}
	in.BackupOriginals = true

	if err := in.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.Extensions) != 2 || !out.BackupOriginals {
		t.Errorf("out = %+v", out)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
