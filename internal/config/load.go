package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/ragingsea/internal/engine/water"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	file := *cfg
	cfg.path = configPath
	cfg.file = &file

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "RagingSea")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "RagingSea")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "ragingsea")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "ragingsea")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects settings the viewer cannot start with. Wave and color
// parameters are never validated: any combination renders.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.PixelRatio < 0 {
		return fmt.Errorf("invalid pixel_ratio %v", c.Graphics.PixelRatio)
	}
	if c.Water.Segments <= 0 || c.Water.Size <= 0 {
		return fmt.Errorf("invalid water plane: size %v, segments %d", c.Water.Size, c.Water.Segments)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid camera clip range %v..%v", c.Camera.Near, c.Camera.Far)
	}
	switch c.Graphics.ToneMapping {
	case "", "none", "aces":
	default:
		return fmt.Errorf("unknown tone_mapping %q", c.Graphics.ToneMapping)
	}
	switch c.Capture.Format {
	case "", "png", "bmp":
	default:
		return fmt.Errorf("unknown capture format %q", c.Capture.Format)
	}
	if c.Water.Params.SmallIterations < 0 || c.Water.Params.SmallIterations > water.MaxSmallIterations {
		return fmt.Errorf("small_iterations %d out of range [0,%d]", c.Water.Params.SmallIterations, water.MaxSmallIterations)
	}
	return nil
}
