// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ragingsea/internal/engine/water"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Water    WaterConfig    `yaml:"water"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`

	// path is the file Load read, empty when none was found.
	path string
	// file holds defaults plus file values, before flags were applied.
	file *Config
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Fullscreen  bool       `yaml:"fullscreen"`
	VSync       bool       `yaml:"vsync"`
	PixelRatio  float32    `yaml:"pixel_ratio"`  // 0 = use the display's ratio
	ToneMapping string     `yaml:"tone_mapping"` // "aces" or "none"
	Exposure    float32    `yaml:"exposure"`
	ClearColor  [4]float32 `yaml:"clear_color"`
	ShowFPS     bool       `yaml:"show_fps"`
}

// CameraConfig holds the perspective camera and orbit controls settings.
type CameraConfig struct {
	FOV           float32    `yaml:"fov"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	Position      mgl32.Vec3 `yaml:"position"`
	Damping       bool       `yaml:"damping"`
	DampingFactor float32    `yaml:"damping_factor"`
}

// WaterConfig holds the plane geometry and shader parameters.
type WaterConfig struct {
	Size      float32        `yaml:"size"`
	Segments  int            `yaml:"segments"`
	TimeScale float32        `yaml:"time_scale"`
	Params    water.Params   `yaml:"params"`
	Lighting  water.Lighting `yaml:"lighting"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // "png" or "bmp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:       1280,
			Height:      720,
			Fullscreen:  false,
			VSync:       true,
			PixelRatio:  0,
			ToneMapping: "aces",
			Exposure:    1,
			ClearColor:  [4]float32{0, 0, 0, 1},
		},
		Camera: CameraConfig{
			FOV:           75,
			Near:          0.1,
			Far:           100,
			Position:      mgl32.Vec3{1, 1, 1},
			Damping:       true,
			DampingFactor: 0.05,
		},
		Water: WaterConfig{
			Size:      water.DefaultSize,
			Segments:  water.DefaultSegments,
			TimeScale: 1.5,
			Params:    water.DefaultParams(),
			Lighting:  water.DefaultLighting(),
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "ragingsea",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
