// Package ui provides ImGui-based user interface components: the SDL
// backend host, the parameter panel drawer and the scene viewport.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/logger"
)

// koreanGlyphRanges defines the Unicode ranges for Korean text rendering.
// Format: pairs of [start, end] values terminated by 0.
var koreanGlyphRanges = []imgui.Wchar{
	0x0020, 0x00FF, // Basic Latin + Latin Supplement
	0x3000, 0x30FF, // CJK Symbols and Punctuation, Hiragana, Katakana
	0x3130, 0x318F, // Hangul Compatibility Jamo
	0xAC00, 0xD7AF, // Hangul Syllables
	0, // Terminator
}

// systemFonts are tried when the configured font is missing.
var systemFonts = []string{
	"/Library/Fonts/Arial Unicode.ttf",                       // macOS (symlink)
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",   // macOS (actual)
	"C:\\Windows\\Fonts\\malgun.ttf",                         // Windows (Malgun Gothic)
	"C:\\Windows\\Fonts\\gulim.ttc",                          // Windows (Gulim)
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc", // Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc", // Linux alt
}

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend  backend.Backend[sdlbackend.SDLWindowFlags]
	log      *zap.Logger
	fontPath string
}

// NewBackend creates the window and ImGui context. fontPath is loaded with
// Hangul glyphs so panel text matches the demos' text geometry; when it is
// missing a system CJK font or the ImGui default is used.
func NewBackend(title string, width, height int, fontPath string) (*Backend, error) {
	b := &Backend{log: logger.Named("ui"), fontPath: fontPath}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	// Fonts must be added before the first frame builds the atlas.
	b.backend.SetAfterCreateContextHook(b.loadFont)

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	return b, nil
}

func (b *Backend) loadFont() {
	candidates := append([]string{b.fontPath}, systemFonts...)

	var fontPath string
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			fontPath = path
			break
		}
	}
	if fontPath == "" {
		b.log.Warn("no Hangul capable font found, using the default font")
		return
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	fonts := imgui.CurrentIO().Fonts()
	if font := fonts.AddFontFromFileTTFV(fontPath, 16.0, fontCfg, &koreanGlyphRanges[0]); font == nil {
		b.log.Warn("failed to load font", zap.String("path", fontPath))
		return
	}
	b.log.Info("loaded font", zap.String("path", fontPath))
}

// Run starts the main render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// GetViewport returns the main viewport work area.
func (b *Backend) GetViewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// FramebufferScale is the pixel ratio of the window's framebuffer.
func FramebufferScale() float32 {
	s := imgui.CurrentIO().DisplayFramebufferScale()
	if s.X <= 0 {
		return 1
	}
	return s.X
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// IsKeyDown checks if a key is currently held down.
func IsKeyDown(key imgui.Key) bool {
	return imgui.IsKeyDown(key)
}

// WantsKeyboard reports whether a widget has keyboard focus, in which case
// host shortcuts should be ignored.
func WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
