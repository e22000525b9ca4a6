package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenelab.yaml")
	if err := os.WriteFile(path, []byte("demo:\n  name: basics\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	changes := make(chan *Config, 4)
	w, err := Watch(path, func(cfg *Config) { changes <- cfg })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write other file: %v", err)
	}
	if err := os.WriteFile(path, []byte("demo:\n  name: shadow\n  preset: point\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Demo.Name == "shadow" {
				if cfg.Demo.Preset != "point" {
					t.Errorf("expected preset 'point', got %s", cfg.Demo.Preset)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "missing", "scenelab.yaml"), func(*Config) {})
	if err == nil {
		t.Error("expected error watching a missing directory")
	}
}
