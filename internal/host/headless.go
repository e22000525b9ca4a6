package host

import (
	"fmt"

	"github.com/Faultbox/scenelab/internal/assets"
	"github.com/Faultbox/scenelab/internal/config"
	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demos"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/scene"
)

// fixedSurface is a surface that never resizes.
type fixedSurface struct{ w, h int }

func (s fixedSurface) ClientSize() (int, int)         { return s.w, s.h }
func (s fixedSurface) DevicePixelRatio() float32      { return 1 }
func (s fixedSurface) OnResize(func()) (unsub func()) { return func() {} }

// nullRenderer accepts everything and draws nothing.
type nullRenderer struct{}

func (nullRenderer) SetPixelRatio(float32)              {}
func (nullRenderer) SetSize(int, int)                   {}
func (nullRenderer) Configure(demo.RenderOptions)       {}
func (nullRenderer) Render(*scene.Scene, camera.Camera) {}

// Headless sets up demo name with preset without a window, waits for its
// assets and runs one frame at time zero so the scene is in its initial
// pose. The caller closes the returned app.
func Headless(cfg *config.Config, name, preset string) (*demo.App, error) {
	d, err := demos.Lookup(name)
	if err != nil {
		return nil, err
	}
	loader := assets.NewLoader(assets.NewDirManager(cfg.Assets.Dir), assets.NewQueue())
	opts := DemoOptions(cfg, loader)
	opts.Preset = preset

	app := demo.New(d, nullRenderer{}, opts)
	if err := app.Initialize(fixedSurface{w: cfg.Graphics.Width, h: cfg.Graphics.Height}); err != nil {
		return nil, fmt.Errorf("starting %s: %w", name, err)
	}
	loader.Wait()
	loader.Queue().Drain()
	app.OnFrame(0)
	return app, nil
}
