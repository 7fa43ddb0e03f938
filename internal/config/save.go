package config

import (
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/ragingsea/internal/engine/water"
)

// LoadedPath returns the file Load read the config from, or "" if it
// found none.
func (c *Config) LoadedPath() string {
	return c.path
}

// SaveTuned persists tuned water parameters and lighting. It writes the
// file-level config with only those two sections replaced, so per-run flag
// overrides never end up on disk. The file Load read is overwritten; when
// there was none the config goes to the user's config directory. It
// returns the path written.
func (c *Config) SaveTuned(params water.Params, lighting water.Lighting) (string, error) {
	out := Default()
	if c.file != nil {
		*out = *c.file
	}
	out.Water.Params = params
	out.Water.Lighting = lighting

	path := c.path
	if path == "" {
		path = filepath.Join(ConfigDir(), "config.yaml")
	}
	return path, out.SaveTo(path)
}

// SaveTo writes the config to a specific path. The file is written next to
// its destination and renamed into place so a failed write never truncates
// an existing config.
func (c *Config) SaveTo(path string) (err error) {
	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	_, err = tmp.Write(data)
	err = multierr.Append(err, tmp.Close())
	if err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadFile reads a config from path on top of the defaults, without flags.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
