// Package config handles scenelab configuration loading and management.
package config

// Config holds all scenelab settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Demo     DemoConfig     `yaml:"demo"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
	Watch    bool           `yaml:"watch"` // Reload demo selection when the file changes

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"`
	ShadowMapSize int     `yaml:"shadow_map_size"`
	MSAA          int     `yaml:"msaa"`
}

// DemoConfig selects the demo shown at startup.
type DemoConfig struct {
	Name   string `yaml:"name"`
	Preset string `yaml:"preset"` // Empty selects the demo's default preset
	Panel  bool   `yaml:"panel"`
}

// AssetsConfig holds asset file locations, relative to Dir.
type AssetsConfig struct {
	Dir          string `yaml:"dir"`
	Font         string `yaml:"font"`
	EnvMap       string `yaml:"env_map"`
	StudioEnvMap string `yaml:"studio_env_map"`
	Textures     string `yaml:"textures"`
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
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: 2,
			ShadowMapSize: 2048,
			MSAA:          4,
		},
		Demo: DemoConfig{
			Name:  "basics",
			Panel: true,
		},
		Assets: AssetsConfig{
			Dir:          "assets",
			Font:         "GowunDodum-Regular.ttf",
			EnvMap:       "charolettenbrunn_park_4k.hdr",
			StudioEnvMap: "studio_small_08_4k.hdr",
			Textures:     "Glass_Window_002",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		ScreenshotDir: "screenshots",
	}
}
