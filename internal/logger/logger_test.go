package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func captureConsole(t *testing.T, levelName string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := Setup(Options{Level: levelName, Console: &buf}); err != nil {
		t.Fatalf("failed to set up logger: %v", err)
	}
	return &buf
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "scenelab.log")

	err := Setup(Options{
		Level: "debug",
		Quiet: true,
		File:  FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1},
	})
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	// About 250 bytes per entry; 15000 entries pass the 1MB limit.
	payload := strings.Repeat("v", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("frame %d: %s", i, payload)
	}
	Sync()

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Fatal("main log file does not exist")
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}
	rotated := 0
	for _, f := range files {
		if f.Name() != "scenelab.log" && strings.HasPrefix(f.Name(), "scenelab-") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Errorf("expected a rotated backup next to %s, got %d files", logFile, len(files))
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
		{"verbose", []string{"INFO"}, []string{"DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := captureConsole(t, tt.level)

			Debug("shader compiled")
			Info("demo started")
			Warn("texture fallback")
			Error("export failed")
			Sync()

			out := buf.String()
			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %s in output %q", exp, out)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc) {
					t.Errorf("unexpected %s in output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestSetLevelAppliesToChildren(t *testing.T) {
	buf := captureConsole(t, "info")
	child := Named("renderer")

	SetLevel("error")
	child.Info("dropped")
	if Level() != zapcore.ErrorLevel {
		t.Errorf("Level() = %v, want error", Level())
	}

	SetLevel("debug")
	child.Debug("kept")
	Sync()

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info entry written at error level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("debug entry missing after SetLevel(debug): %q", out)
	}
}

func TestNamedIncludesSubsystem(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	if err := Setup(Options{Level: "info", Quiet: true, File: FileConfig{Path: logFile, MaxSizeMB: 1}}); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("renderer").Info("surface resized")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	for _, want := range []string{"renderer", "surface resized", "INFO"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected %q in log file, got %q", want, content)
		}
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("scenelab.log")

	if cfg.Path != "scenelab.log" {
		t.Errorf("expected path scenelab.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected rotation limits: %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
