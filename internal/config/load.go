package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// The returned path is the file that was read, or "" when none was found.
func Load() (*Config, string, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, "", fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)
	cfg.normalize()

	return cfg, configPath, nil
}

// LoadFile reads a config file on top of the defaults, without flags.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./scenelab.yaml",
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
		return filepath.Join(home, "Library", "Application Support", "SceneLab")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SceneLab")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "scenelab")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "scenelab")
	}
}

// AssetPath joins name onto the asset directory unless it is absolute.
func (c *Config) AssetPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Assets.Dir, name)
}

// normalize clamps values a hand-edited file can get wrong.
func (c *Config) normalize() {
	if c.Graphics.MaxPixelRatio <= 0 {
		c.Graphics.MaxPixelRatio = 2
	}
	if c.Graphics.ShadowMapSize <= 0 {
		c.Graphics.ShadowMapSize = 2048
	}
	if c.Graphics.Width <= 0 {
		c.Graphics.Width = 1280
	}
	if c.Graphics.Height <= 0 {
		c.Graphics.Height = 720
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
