package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent.yml")); err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if got := Get(); got != Default() {
		t.Errorf("Expected defaults, got %+v", got)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxelview.yml")
	body := "window_width: 1280\nwindow_height: 720\nterrain: hills\nseed: 42\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s := Get()
	if s.WindowWidth != 1280 || s.WindowHeight != 720 {
		t.Errorf("Expected 1280x720, got %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.Terrain != TerrainHills || s.Seed != 42 {
		t.Errorf("Expected hills/42, got %s/%d", s.Terrain, s.Seed)
	}
	// Untouched keys keep their defaults.
	if s.FPSLimit != Default().FPSLimit {
		t.Errorf("Expected default fps_limit, got %d", s.FPSLimit)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":    "window_width: [",
		"bad terrain": "terrain: moon\n",
		"bad fov":     "fov: 200\n",
		"bad size":    "window_width: 0\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "cfg.yml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := Load(path); err == nil {
			t.Errorf("%s: expected error, got none", name)
		}
	}
}

func TestSetFPSLimit(t *testing.T) {
	SetFPSLimit(60)
	if got := GetFPSLimit(); got != 60 {
		t.Errorf("Expected 60, got %d", got)
	}
	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("Expected negative clamp to 0, got %d", got)
	}
}
