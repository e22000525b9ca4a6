package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

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
	if cfg.Graphics.MaxPixelRatio != 2 {
		t.Errorf("expected max pixel ratio 2, got %f", cfg.Graphics.MaxPixelRatio)
	}

	if cfg.Demo.Name != "basics" {
		t.Errorf("expected demo 'basics', got %s", cfg.Demo.Name)
	}
	if cfg.Demo.Preset != "" {
		t.Errorf("expected empty preset, got %s", cfg.Demo.Preset)
	}

	if cfg.Assets.Dir != "assets" {
		t.Errorf("expected asset dir 'assets', got %s", cfg.Assets.Dir)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  max_pixel_ratio: 1.5

demo:
  name: shadow
  preset: studio
  panel: false

assets:
  dir: /srv/scenelab
  font: NanumGothic.ttf

logging:
  level: "debug"
  log_file: "scenelab.log"

watch: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

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
	if cfg.Graphics.MaxPixelRatio != 1.5 {
		t.Errorf("expected max pixel ratio 1.5, got %f", cfg.Graphics.MaxPixelRatio)
	}

	if cfg.Demo.Name != "shadow" || cfg.Demo.Preset != "studio" {
		t.Errorf("expected shadow/studio, got %s/%s", cfg.Demo.Name, cfg.Demo.Preset)
	}
	if cfg.Demo.Panel {
		t.Error("expected panel to be false")
	}

	if cfg.Assets.Font != "NanumGothic.ttf" {
		t.Errorf("expected font NanumGothic.ttf, got %s", cfg.Assets.Font)
	}
	// Unset keys keep their defaults.
	if cfg.Assets.EnvMap != "charolettenbrunn_park_4k.hdr" {
		t.Errorf("expected default env map, got %s", cfg.Assets.EnvMap)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "scenelab.log" {
		t.Errorf("expected log file 'scenelab.log', got %s", cfg.Logging.LogFile)
	}
	if !cfg.Watch {
		t.Error("expected watch to be true")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
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

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFileNormalizes(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: -5
  max_pixel_ratio: 0
  shadow_map_size: 0
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width reset to 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.MaxPixelRatio != 2 {
		t.Errorf("expected max pixel ratio reset to 2, got %f", cfg.Graphics.MaxPixelRatio)
	}
	if cfg.Graphics.ShadowMapSize != 2048 {
		t.Errorf("expected shadow map size reset to 2048, got %d", cfg.Graphics.ShadowMapSize)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestAssetPath(t *testing.T) {
	cfg := Default()
	cfg.Assets.Dir = "data"

	if got := cfg.AssetPath("a.hdr"); got != filepath.Join("data", "a.hdr") {
		t.Errorf("expected data/a.hdr, got %s", got)
	}
	abs := filepath.Join(t.TempDir(), "b.hdr")
	if got := cfg.AssetPath(abs); got != abs {
		t.Errorf("expected absolute path unchanged, got %s", got)
	}
	if got := cfg.AssetPath(""); got != "" {
		t.Errorf("expected empty path, got %s", got)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "scenelab.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find scenelab.yaml in current directory")
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
			name: "demo flag clears file preset",
			setup: func() {
				*flagDemo = "light"
			},
			verify: func(cfg *Config) {
				if cfg.Demo.Name != "light" {
					t.Errorf("expected demo 'light', got %s", cfg.Demo.Name)
				}
				if cfg.Demo.Preset != "" {
					t.Errorf("expected preset cleared, got %s", cfg.Demo.Preset)
				}
			},
			teardown: func() {
				*flagDemo = ""
			},
		},
		{
			name: "demo and preset flags",
			setup: func() {
				*flagDemo = "light"
				*flagPreset = "spot"
			},
			verify: func(cfg *Config) {
				if cfg.Demo.Preset != "spot" {
					t.Errorf("expected preset 'spot', got %s", cfg.Demo.Preset)
				}
			},
			teardown: func() {
				*flagDemo = ""
				*flagPreset = ""
			},
		},
		{
			name: "assets flag",
			setup: func() {
				*flagAssets = "/tmp/assets"
			},
			verify: func(cfg *Config) {
				if cfg.Assets.Dir != "/tmp/assets" {
					t.Errorf("expected asset dir /tmp/assets, got %s", cfg.Assets.Dir)
				}
			},
			teardown: func() {
				*flagAssets = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			cfg.Demo.Preset = "from-file"
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
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

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if path != configPath {
		t.Errorf("expected path %s, got %s", configPath, path)
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

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Demo.Name = "camera"
	cfg.Demo.Preset = "orthographic"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Demo.Name != "camera" || loaded.Demo.Preset != "orthographic" {
		t.Errorf("expected camera/orthographic, got %s/%s", loaded.Demo.Name, loaded.Demo.Preset)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only config.yaml after save, got %d entries", len(entries))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if data[0] != '#' {
		t.Errorf("expected a comment header, got %q", data[:20])
	}
}
