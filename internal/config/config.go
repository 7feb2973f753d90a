// Package config loads the studio-tui YAML configuration. Every field has a
// default so the client runs with no config file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gesture GestureConfig `yaml:"gesture"`
	UI      UIConfig      `yaml:"ui"`
}

type ServerConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// GestureConfig tunes the drag/flick engine. Distances are in terminal
// cells, velocities in cells per millisecond. Cells are far coarser than
// pixels, so the velocity threshold sits well below the pixel-calibrated
// engine default.
type GestureConfig struct {
	VelocityThreshold        float64 `yaml:"velocity_threshold"`
	SheetDistanceFraction    float64 `yaml:"sheet_distance_fraction"`
	CarouselDistanceFraction float64 `yaml:"carousel_distance_fraction"`
	Resistance               float64 `yaml:"resistance"`
	SheetOvershootCap        float64 `yaml:"sheet_overshoot_cap"`
}

type UIConfig struct {
	FPS             int       `yaml:"fps"`
	Haptics         bool      `yaml:"haptics"`
	SheetSnapPoints []float64 `yaml:"sheet_snap_points"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL: "ws://127.0.0.1:8080/ws",
		},
		Gesture: GestureConfig{
			VelocityThreshold:        0.15,
			SheetDistanceFraction:    0.30,
			CarouselDistanceFraction: 0.25,
			Resistance:               0.3,
			SheetOvershootCap:        6,
		},
		UI: UIConfig{
			FPS:             60,
			Haptics:         true,
			SheetSnapPoints: []float64{0.5, 0.9},
		},
	}
}

// Load reads the config at path, overlaying it onto the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.UI.SheetSnapPoints) == 0 {
		return fmt.Errorf("ui.sheet_snap_points must not be empty")
	}
	prev := 0.0
	for _, p := range c.UI.SheetSnapPoints {
		if p <= 0 || p > 1 {
			return fmt.Errorf("snap point %v outside (0, 1]", p)
		}
		if p <= prev {
			return fmt.Errorf("snap points must be strictly increasing")
		}
		prev = p
	}
	if c.UI.FPS <= 0 {
		return fmt.Errorf("ui.fps must be positive")
	}
	return nil
}
