package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/assets"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/gui"
	"github.com/Faultbox/scenelab/internal/engine/scene"
	"github.com/Faultbox/scenelab/internal/logger"
)

// Options configure an App.
type Options struct {
	Preset        string
	MaxPixelRatio float32
	Assets        AssetNames
	// Loader decodes assets; when nil a loader with no sources is used and
	// every load falls back.
	Loader *assets.Loader
}

// App drives one demo against one surface and renderer.
type App struct {
	demo     Demo
	renderer Renderer
	opts     Options
	log      *zap.Logger

	surface     Surface
	ctx         *Context
	unsubscribe func()
	initialized bool
	frames      int
}

// New creates an app for d drawing with r. Nothing happens until
// Initialize.
func New(d Demo, r Renderer, opts Options) *App {
	if opts.MaxPixelRatio <= 0 {
		opts.MaxPixelRatio = 2
	}
	if opts.Assets == (AssetNames{}) {
		opts.Assets = DefaultAssetNames()
	}
	if opts.Loader == nil {
		opts.Loader = assets.NewLoader(assets.NewManager(), assets.NewQueue())
	}
	return &App{demo: d, renderer: r, opts: opts, log: logger.Named("demo").With(zap.String("demo", d.Name()))}
}

// Initialize sizes the renderer to s and runs the setup hooks: camera,
// lights, models, then the resize subscription. With a nil surface it logs
// and returns ErrNoContainer and the app stays inert.
func (a *App) Initialize(s Surface) error {
	if s == nil {
		a.log.Error("initialize", zap.Error(ErrNoContainer))
		return ErrNoContainer
	}
	preset := a.opts.Preset
	if preset == "" {
		preset = a.demo.Presets()[0]
	}
	if !HasPreset(a.demo, preset) {
		return fmt.Errorf("%w: %s has no preset %q", ErrUnknownPreset, a.demo.Name(), preset)
	}

	a.surface = s
	w, h := s.ClientSize()
	a.renderer.SetPixelRatio(PixelRatio(s.DevicePixelRatio(), a.opts.MaxPixelRatio))
	a.renderer.SetSize(w, h)

	ctx := &Context{
		Scene:   scene.New(),
		Panel:   gui.NewPanel(a.demo.Name()),
		Loader:  a.opts.Loader,
		Assets:  a.opts.Assets,
		Preset:  preset,
		Options: DefaultRenderOptions(),
		Aspect:  aspect(w, h),
	}
	a.ctx = ctx

	ctx.Camera = a.demo.SetupCamera(ctx)
	a.demo.SetupLights(ctx)
	if err := a.demo.SetupModels(ctx); err != nil {
		ctx.dispose()
		a.ctx = nil
		return fmt.Errorf("setup %s models: %w", a.demo.Name(), err)
	}
	a.renderer.Configure(ctx.Options)

	a.unsubscribe = s.OnResize(a.OnResize)
	a.initialized = true
	a.log.Info("initialized", zap.String("preset", preset), zap.Int("width", w), zap.Int("height", h))
	return nil
}

func aspect(w, h int) float32 {
	if h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// OnResize reads the surface size, updates the camera projection and
// resizes the renderer. It does nothing before Initialize.
func (a *App) OnResize() {
	if !a.initialized || a.ctx.Camera == nil {
		return
	}
	w, h := a.surface.ClientSize()
	a.ctx.Aspect = aspect(w, h)
	a.ctx.Camera.SetAspect(a.ctx.Aspect)
	a.renderer.SetPixelRatio(PixelRatio(a.surface.DevicePixelRatio(), a.opts.MaxPixelRatio))
	a.renderer.SetSize(w, h)
}

// OnFrame runs one frame at elapsedMillis since start: finished asset
// loads are applied, the demo updates, orbit controls update and the scene
// renders once.
func (a *App) OnFrame(elapsedMillis float64) {
	if !a.initialized {
		return
	}
	t := elapsedMillis / 1000
	a.ctx.Loader.Queue().Drain()
	a.demo.Update(a.ctx, t)
	if a.ctx.Controls != nil {
		a.ctx.Controls.Update()
	}
	a.renderer.Render(a.ctx.Scene, a.ctx.Camera)
	a.frames++
}

// Close unsubscribes from resizes and disposes the demo's resources. The
// app can not be initialized again.
func (a *App) Close() {
	if !a.initialized {
		return
	}
	a.initialized = false
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if c, ok := a.demo.(Closer); ok {
		c.Close(a.ctx)
	}
	a.ctx.Panel.Destroy()
	a.ctx.dispose()
	a.log.Info("closed", zap.Int("frames", a.frames))
}

// Demo returns the demo being run.
func (a *App) Demo() Demo { return a.demo }

// Context returns the setup context, nil before Initialize.
func (a *App) Context() *Context { return a.ctx }

// Initialized reports whether the app is running.
func (a *App) Initialized() bool { return a.initialized }

// Camera returns the active camera.
func (a *App) Camera() camera.Camera {
	if a.ctx == nil {
		return nil
	}
	return a.ctx.Camera
}
