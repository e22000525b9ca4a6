// Package demotest provides an in-memory surface and a recording renderer
// for running demos without a window or GL context.
package demotest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// Surface is a resizable container with a fixed pixel ratio.
type Surface struct {
	W, H      int
	Ratio     float32
	listeners map[int]func()
	next      int
}

// NewSurface creates a w x h surface at pixel ratio 1.
func NewSurface(w, h int) *Surface {
	return &Surface{W: w, H: h, Ratio: 1, listeners: make(map[int]func())}
}

func (s *Surface) ClientSize() (int, int)    { return s.W, s.H }
func (s *Surface) DevicePixelRatio() float32 { return s.Ratio }

func (s *Surface) OnResize(fn func()) func() {
	id := s.next
	s.next++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Resize changes the size and notifies subscribers.
func (s *Surface) Resize(w, h int) {
	s.W, s.H = w, h
	for _, fn := range s.listeners {
		fn()
	}
}

// Subscribers returns the number of resize subscriptions.
func (s *Surface) Subscribers() int { return len(s.listeners) }

// Renderer records what it is asked to do.
type Renderer struct {
	Ratio   float32
	W, H    int
	Options demo.RenderOptions
	Renders int
	Scene   *scene.Scene
	Camera  camera.Camera
}

func (r *Renderer) SetPixelRatio(ratio float32)    { r.Ratio = ratio }
func (r *Renderer) SetSize(w, h int)               { r.W, r.H = w, h }
func (r *Renderer) Configure(o demo.RenderOptions) { r.Options = o }

func (r *Renderer) Render(s *scene.Scene, cam camera.Camera) {
	r.Renders++
	r.Scene, r.Camera = s, cam
}

// Start initializes d with preset on an 800x600 surface and applies any
// asset loads it started. Assets resolve against no sources, so every load
// takes its fallback path.
func Start(t testing.TB, d demo.Demo, preset string) (*demo.App, *Surface, *Renderer) {
	t.Helper()
	s := NewSurface(800, 600)
	r := &Renderer{}
	app := demo.New(d, r, demo.Options{Preset: preset})
	require.NoError(t, app.Initialize(s))
	t.Cleanup(app.Close)
	Settle(app)
	return app, s, r
}

// Settle waits for pending asset loads and applies their results.
func Settle(app *demo.App) {
	ctx := app.Context()
	if ctx == nil {
		return
	}
	ctx.Loader.Wait()
	ctx.Loader.Queue().Drain()
}

// Count returns how many direct children of the scene are named name.
func Count(s *scene.Scene, name string) int {
	n := 0
	for _, c := range s.Children() {
		if c.Base().Name == name {
			n++
		}
	}
	return n
}
