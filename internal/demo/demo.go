// Package demo runs a single scene demo: it sizes the renderer to a host
// surface, calls the demo's setup hooks in order, keeps the camera in step
// with resizes and drives the per-frame update and render.
package demo

import (
	"errors"

	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

var (
	// ErrNoContainer is returned by Initialize when there is no surface.
	ErrNoContainer = errors.New("demo: no container surface")
	// ErrUnknownDemo is returned when a demo name is not registered.
	ErrUnknownDemo = errors.New("demo: unknown demo")
	// ErrUnknownPreset is returned when a preset name is not offered by a demo.
	ErrUnknownPreset = errors.New("demo: unknown preset")
)

// Surface is the host area the demo draws into.
type Surface interface {
	// ClientSize returns the size in logical (CSS-like) pixels.
	ClientSize() (width, height int)
	DevicePixelRatio() float32
	// OnResize registers fn for size changes and returns a function that
	// removes it.
	OnResize(fn func()) (unsubscribe func())
}

// ToneMapping selects the curve applied before output.
type ToneMapping int

const (
	NoToneMapping ToneMapping = iota
	ACESFilmic
)

// RenderOptions are renderer switches a demo may set during setup.
type RenderOptions struct {
	Shadows     bool
	ToneMapping ToneMapping
	Exposure    float32
}

// DefaultRenderOptions has shadows off and no tone mapping.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Exposure: 1}
}

// Renderer draws a scene. Implemented by the GL renderer and by test fakes.
type Renderer interface {
	SetPixelRatio(ratio float32)
	// SetSize sets the output size in logical pixels; the drawable is that
	// times the pixel ratio.
	SetSize(width, height int)
	Configure(opts RenderOptions)
	Render(s *scene.Scene, cam camera.Camera)
}

// Demo is implemented by each scene demo. Hooks run in declaration order
// during Initialize; Update runs every frame.
type Demo interface {
	Name() string
	// Presets lists the named variants; the first is the default.
	Presets() []string
	SetupCamera(ctx *Context) camera.Camera
	SetupLights(ctx *Context)
	SetupModels(ctx *Context) error
	// Update advances time driven state. t is seconds since start.
	Update(ctx *Context, t float64)
}

// Closer is implemented by demos holding resources beyond what Context
// tracks.
type Closer interface {
	Close(ctx *Context)
}

// PixelRatio caps a device pixel ratio at limit. Non-positive ratios count
// as 1.
func PixelRatio(device, limit float32) float32 {
	if device <= 0 {
		device = 1
	}
	if limit > 0 && device > limit {
		return limit
	}
	return device
}

// DrawableSize is the output size in device pixels.
func DrawableSize(width, height int, ratio float32) (int, int) {
	return int(float32(width)*ratio + 0.5), int(float32(height)*ratio + 0.5)
}

// HasPreset reports whether d offers preset.
func HasPreset(d Demo, preset string) bool {
	for _, p := range d.Presets() {
		if p == preset {
			return true
		}
	}
	return false
}
