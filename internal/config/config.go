package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Terrain mode names accepted in the settings file.
const (
	TerrainFlat  = "flat"
	TerrainHills = "hills"
)

// Settings holds viewer configuration. Values come from defaults overlaid
// by an optional YAML file.
type Settings struct {
	WindowWidth      int     `yaml:"window_width"`
	WindowHeight     int     `yaml:"window_height"`
	FPSLimit         int     `yaml:"fps_limit"` // 0 disables the limiter
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	FOV              float64 `yaml:"fov"`
	Terrain          string  `yaml:"terrain"`
	Seed             int64   `yaml:"seed"`
}

// Default returns the settings used when no file overrides them.
func Default() Settings {
	return Settings{
		WindowWidth:      900,
		WindowHeight:     600,
		FPSLimit:         120,
		MouseSensitivity: 0.1,
		FOV:              70,
		Terrain:          TerrainFlat,
		Seed:             1,
	}
}

var (
	mu     sync.RWMutex
	global = Default()
)

// Load reads a YAML settings file over the defaults. A missing file is not
// an error; a malformed or invalid one is.
func Load(path string) error {
	s := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		setGlobal(s)
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := validate(s); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	setGlobal(s)
	return nil
}

func validate(s Settings) error {
	if s.WindowWidth < 1 || s.WindowHeight < 1 {
		return fmt.Errorf("window size %dx%d is invalid", s.WindowWidth, s.WindowHeight)
	}
	if s.FPSLimit < 0 {
		return fmt.Errorf("fps_limit %d is invalid", s.FPSLimit)
	}
	if s.FOV < 30 || s.FOV > 120 {
		return fmt.Errorf("fov %v outside [30,120]", s.FOV)
	}
	if s.Terrain != TerrainFlat && s.Terrain != TerrainHills {
		return fmt.Errorf("unknown terrain mode %q", s.Terrain)
	}
	return nil
}

func setGlobal(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	global = s
}

// Get returns a copy of the current settings.
func Get() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// GetFPSLimit returns the frame cap; 0 means uncapped.
func GetFPSLimit() int {
	mu.RLock()
	defer mu.RUnlock()
	return global.FPSLimit
}

// GetMouseSensitivity returns degrees of look per pixel of mouse travel.
func GetMouseSensitivity() float64 {
	mu.RLock()
	defer mu.RUnlock()
	return global.MouseSensitivity
}

// SetFPSLimit overrides the frame cap at runtime.
func SetFPSLimit(limit int) {
	mu.Lock()
	defer mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	global.FPSLimit = limit
}
