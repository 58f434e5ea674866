package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(ModeMassive)

	if cfg.Mode != ModeMassive {
		t.Errorf("expected mode massive, got %s", cfg.Mode)
	}
	if cfg.GM <= 0 {
		t.Error("GM should be positive")
	}
	if cfg.RMin <= 0 || cfg.RMin >= cfg.RMax {
		t.Errorf("invalid default window [%f, %f]", cfg.RMin, cfg.RMax)
	}
	if cfg.Points != 3000 {
		t.Errorf("expected 3000 points, got %d", cfg.Points)
	}
}

func TestDefaultConfig_Photon(t *testing.T) {
	cfg := DefaultConfig(ModePhoton)

	if cfg.Mode != ModePhoton {
		t.Errorf("expected mode photon, got %s", cfg.Mode)
	}
	if cfg.RMin != 1.5 || cfg.RMax != 15 {
		t.Errorf("expected photon window [1.5, 15], got [%f, %f]", cfg.RMin, cfg.RMax)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset(ModeMassive, "bound")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Values != "4, 5, 7" {
		t.Errorf("expected values '4, 5, 7', got %q", cfg.Values)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset(ModeMassive, "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "bound"); cfg != nil {
		t.Error("expected nil for nonexistent mode")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets(ModePhoton); len(presets) == 0 {
		t.Error("expected presets for photon mode")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent mode")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gravpot.yaml")

	cfg := DefaultConfig(ModePhoton)
	cfg.Values = "6"
	cfg.Newtonian = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Mode != ModePhoton {
		t.Errorf("expected photon mode, got %s", loaded.Mode)
	}
	if loaded.Values != "6" {
		t.Errorf("expected values '6', got %q", loaded.Values)
	}
	if !loaded.Newtonian {
		t.Error("expected newtonian flag to survive round trip")
	}
	// Untouched fields come from the photon defaults.
	if loaded.RMax != DefaultPhotonRMax {
		t.Errorf("expected default photon rMax, got %f", loaded.RMax)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
