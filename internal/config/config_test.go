package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ragingsea/internal/engine/water"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.ToneMapping != "aces" {
		t.Errorf("expected tone mapping aces, got %s", cfg.Graphics.ToneMapping)
	}

	// Test camera defaults
	if cfg.Camera.FOV != 75 {
		t.Errorf("expected fov 75, got %v", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 100 {
		t.Errorf("expected clip range 0.1..100, got %v..%v", cfg.Camera.Near, cfg.Camera.Far)
	}
	if cfg.Camera.Position != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("expected camera at (1,1,1), got %v", cfg.Camera.Position)
	}
	if !cfg.Camera.Damping {
		t.Error("expected damping to be enabled by default")
	}

	// Test water defaults
	if cfg.Water.Segments != 512 {
		t.Errorf("expected 512 segments, got %d", cfg.Water.Segments)
	}
	if cfg.Water.TimeScale != 1.5 {
		t.Errorf("expected time scale 1.5, got %v", cfg.Water.TimeScale)
	}
	if cfg.Water.Params != water.DefaultParams() {
		t.Errorf("expected default water params, got %+v", cfg.Water.Params)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  pixel_ratio: 1.5
  tone_mapping: none

camera:
  fov: 60
  position: [2, 1, 2]

water:
  segments: 128
  params:
    big_waves_elevation: 0.4
    big_waves_frequency: [2, 3]
    small_iterations: 2
    depth_color: "#000000"
    surface_color: "#ffffff"
  lighting:
    enabled: true

logging:
  level: "debug"
  log_file: "sea.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.PixelRatio != 1.5 {
		t.Errorf("expected pixel ratio 1.5, got %v", cfg.Graphics.PixelRatio)
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Camera.FOV)
	}
	if cfg.Camera.Position != (mgl32.Vec3{2, 1, 2}) {
		t.Errorf("expected camera at (2,1,2), got %v", cfg.Camera.Position)
	}
	// Unset fields keep their defaults.
	if cfg.Camera.Far != 100 {
		t.Errorf("expected far 100 from defaults, got %v", cfg.Camera.Far)
	}

	p := cfg.Water.Params
	if cfg.Water.Segments != 128 {
		t.Errorf("expected 128 segments, got %d", cfg.Water.Segments)
	}
	if p.BigWavesElevation != 0.4 {
		t.Errorf("expected big waves elevation 0.4, got %v", p.BigWavesElevation)
	}
	if p.BigWavesFrequency != (mgl32.Vec2{2, 3}) {
		t.Errorf("expected frequency (2,3), got %v", p.BigWavesFrequency)
	}
	if p.SmallIterations != 2 {
		t.Errorf("expected 2 iterations, got %d", p.SmallIterations)
	}
	if p.SurfaceColor.Hex() != "#ffffff" {
		t.Errorf("expected white surface, got %s", p.SurfaceColor)
	}
	if p.BigWavesSpeed != 0.75 {
		t.Errorf("expected speed 0.75 from defaults, got %v", p.BigWavesSpeed)
	}
	if !cfg.Water.Lighting.Enabled {
		t.Error("expected lighting to be enabled")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sea.log" {
		t.Errorf("expected log file 'sea.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileBadColor(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "water:\n  params:\n    depth_color: \"#zz0000\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for malformed color, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative pixel ratio", func(c *Config) { c.Graphics.PixelRatio = -1 }},
		{"no segments", func(c *Config) { c.Water.Segments = 0 }},
		{"inverted clip range", func(c *Config) { c.Camera.Far = 0.05 }},
		{"unknown tone mapping", func(c *Config) { c.Graphics.ToneMapping = "reinhard" }},
		{"unknown capture format", func(c *Config) { c.Capture.Format = "gif" }},
		{"too many iterations", func(c *Config) { c.Water.Params.SmallIterations = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateAcceptsDegenerateWaves(t *testing.T) {
	cfg := Default()
	cfg.Water.Params.BigWavesElevation = -50
	cfg.Water.Params.ColorMultiplier = 0
	cfg.Water.Params.SmallWavesFrequency = 1e6
	if err := cfg.Validate(); err != nil {
		t.Errorf("wave parameters must not be validated: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Graphics.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "segments flag",
			setup: func() {
				*flagSegments = 64
			},
			verify: func(cfg *Config) {
				if cfg.Water.Segments != 64 {
					t.Errorf("expected 64 segments, got %d", cfg.Water.Segments)
				}
			},
			teardown: func() {
				*flagSegments = 0
			},
		},
		{
			name: "iterations flag clamps",
			setup: func() {
				*flagIterations = 9
			},
			verify: func(cfg *Config) {
				if cfg.Water.Params.SmallIterations != water.MaxSmallIterations {
					t.Errorf("expected %d iterations, got %d", water.MaxSmallIterations, cfg.Water.Params.SmallIterations)
				}
			},
			teardown: func() {
				*flagIterations = -1
			},
		},
		{
			name: "iterations flag zero",
			setup: func() {
				*flagIterations = 0
			},
			verify: func(cfg *Config) {
				if cfg.Water.Params.SmallIterations != 0 {
					t.Errorf("expected 0 iterations, got %d", cfg.Water.Params.SmallIterations)
				}
			},
			teardown: func() {
				*flagIterations = -1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Water.Params.SmallIterations = 3
	cfg.Water.Params.DepthColor = water.MustParseHex("#123456")
	cfg.Graphics.Width = 800

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Water.Params.SmallIterations != 3 {
		t.Errorf("expected 3 iterations, got %d", loaded.Water.Params.SmallIterations)
	}
	if loaded.Water.Params.DepthColor.Hex() != "#123456" {
		t.Errorf("expected depth color #123456, got %s", loaded.Water.Params.DepthColor)
	}
	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", loaded.Graphics.Width)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only config.yaml after save, found %d entries", len(entries))
	}
}

func TestSaveTunedWritesLoadedFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if err := os.WriteFile("config.yaml", []byte("water:\n  params:\n    color_offset: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LoadedPath() != "./config.yaml" {
		t.Fatalf("loaded path = %q, want ./config.yaml", cfg.LoadedPath())
	}

	params := cfg.Water.Params
	params.ColorOffset = 0.1
	path, err := cfg.SaveTuned(params, cfg.Water.Lighting)
	if err != nil {
		t.Fatalf("SaveTuned: %v", err)
	}
	if path != "./config.yaml" {
		t.Errorf("saved to %q, want ./config.yaml", path)
	}
	if _, err := os.Stat(filepath.Join(ConfigDir(), "config.yaml")); !os.IsNotExist(err) {
		t.Errorf("config dir file should not be written, stat err = %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Water.Params.ColorOffset != 0.1 {
		t.Errorf("reloaded color_offset = %v, want 0.1", reloaded.Water.Params.ColorOffset)
	}
}

func TestSaveTunedWithoutFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)
	t.Setenv("APPDATA", tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LoadedPath() != "" {
		t.Fatalf("loaded path = %q, want none", cfg.LoadedPath())
	}

	params := cfg.Water.Params
	params.SmallIterations = 2
	path, err := cfg.SaveTuned(params, cfg.Water.Lighting)
	if err != nil {
		t.Fatalf("SaveTuned: %v", err)
	}
	if want := filepath.Join(ConfigDir(), "config.yaml"); path != want {
		t.Errorf("saved to %q, want %q", path, want)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Water.Params.SmallIterations != 2 {
		t.Errorf("small_iterations = %d, want 2", loaded.Water.Params.SmallIterations)
	}
}

func TestSaveTunedDropsFlagOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 1600\n  height: 900\n"), 0644); err != nil {
		t.Fatal(err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	*flagSegments = 64
	*flagDebug = true
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
		*flagSegments = 0
		*flagDebug = false
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Graphics.Width != 1920 || !cfg.Graphics.ShowFPS {
		t.Fatalf("flags not applied: width %d, show_fps %v", cfg.Graphics.Width, cfg.Graphics.ShowFPS)
	}

	params := cfg.Water.Params
	params.ColorMultiplier = 7
	lighting := cfg.Water.Lighting
	lighting.Enabled = false
	if _, err := cfg.SaveTuned(params, lighting); err != nil {
		t.Fatalf("SaveTuned: %v", err)
	}

	saved, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	def := Default()
	if saved.Graphics.Width != 1600 || saved.Graphics.Height != 900 {
		t.Errorf("saved size = %dx%d, want 1600x900 from file", saved.Graphics.Width, saved.Graphics.Height)
	}
	if saved.Water.Segments != def.Water.Segments {
		t.Errorf("saved segments = %d, want default %d", saved.Water.Segments, def.Water.Segments)
	}
	if saved.Graphics.ShowFPS != def.Graphics.ShowFPS || saved.Logging.Level != def.Logging.Level {
		t.Errorf("debug flag leaked into file: show_fps %v, level %q", saved.Graphics.ShowFPS, saved.Logging.Level)
	}
	if saved.Water.Params.ColorMultiplier != 7 {
		t.Errorf("color_multiplier = %v, want 7", saved.Water.Params.ColorMultiplier)
	}
	if saved.Water.Lighting.Enabled {
		t.Error("lighting should be saved disabled")
	}

	// The loaded config keeps its flag values.
	if cfg.Graphics.Width != 1920 {
		t.Errorf("in-memory width = %d, want 1920", cfg.Graphics.Width)
	}
}
