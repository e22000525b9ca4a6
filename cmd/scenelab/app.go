package main

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/config"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/renderer"
	"github.com/Faultbox/scenelab/internal/engine/ui"
	"github.com/Faultbox/scenelab/internal/export"
	"github.com/Faultbox/scenelab/internal/host"
	"github.com/Faultbox/scenelab/internal/logger"
)

const (
	controlsWidth = 320
	messageTTL    = 3 * time.Second
)

// App is the viewer state.
type App struct {
	cfg      *config.Config
	cfgPath  string
	log      *zap.Logger
	backend  *ui.Backend
	renderer *renderer.Renderer
	viewport *ui.Viewport
	session  *host.Session

	showPanel bool

	fps        float32
	frames     int
	fpsStarted time.Time

	message     string
	messageTime time.Time
}

// NewApp creates the window, the renderer and the session.
func NewApp(cfg *config.Config, cfgPath string) (*App, error) {
	app := &App{
		cfg:        cfg,
		cfgPath:    cfgPath,
		log:        logger.Named("scenelab"),
		showPanel:  cfg.Demo.Panel,
		fpsStarted: time.Now(),
	}

	var err error
	app.backend, err = ui.NewBackend("SceneLab", cfg.Graphics.Width, cfg.Graphics.Height, cfg.AssetPath(cfg.Assets.Font))
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	app.renderer, err = renderer.New(renderer.Config{
		MaxShadowMapSize: cfg.Graphics.ShadowMapSize,
		Samples:          cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	app.viewport = ui.NewViewport("Scene", cfg.Graphics.Width-controlsWidth, cfg.Graphics.Height)
	app.session, err = host.NewSession(cfg, cfgPath, app.renderer, app.viewport)
	if err != nil {
		app.renderer.Close()
		return nil, err
	}
	return app, nil
}

// Run drives frames until the window closes.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// Close releases the session and GPU resources.
func (app *App) Close() {
	if app.session != nil {
		app.session.Close()
	}
	if app.renderer != nil {
		app.renderer.Close()
	}
}

func (app *App) render() {
	x, y, w, h := app.backend.GetViewport()

	left := float32(0)
	if app.showPanel {
		left = controlsWidth
		app.drawControls(x, y, left, h)
	}

	var controls *camera.OrbitControls
	if cur := app.session.Switcher.Current(); cur != nil {
		controls = cur.Context().Controls
	}
	app.viewport.Draw(x+left, y, w-left, h, app.renderer.ColorTexture(), controls)

	app.handleKeys()

	// The scene texture is drawn by the backend after this function
	// returns, so rendering here shows this frame's image.
	app.session.Frame()
	app.tickFPS()
}

func (app *App) tickFPS() {
	app.frames++
	if elapsed := time.Since(app.fpsStarted); elapsed >= time.Second {
		app.fps = float32(app.frames) / float32(elapsed.Seconds())
		app.frames = 0
		app.fpsStarted = time.Now()
	}
}

func (app *App) handleKeys() {
	if ui.WantsKeyboard() {
		return
	}
	if ui.IsKeyPressed(imgui.KeyF12) {
		app.screenshot()
	}
	if ui.IsKeyPressed(imgui.KeyTab) {
		app.session.Switcher.CyclePreset()
	}
	if ui.IsKeyPressed(imgui.KeyP) {
		app.showPanel = !app.showPanel
	}
	for i := range app.session.Registry.Names() {
		if i < 9 && ui.IsKeyPressed(imgui.Key1+imgui.Key(i)) {
			app.session.SelectIndex(i)
		}
	}
}

func (app *App) screenshot() {
	path, err := app.session.Screenshot(app.renderer)
	if err != nil {
		app.notify(fmt.Sprintf("Screenshot failed: %v", err))
		return
	}
	app.notify("Saved " + path)
}

// exportDialog asks for a target file off the main thread and exports on
// the next frame.
func (app *App) exportDialog() {
	queue := app.session.Loader.Queue()
	go func() {
		path, err := dialog.File().
			Filter("glTF binary", "glb").
			Filter("glTF", "gltf").
			Title("Export scene").
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				app.log.Warn("file dialog", zap.Error(err))
			}
			return
		}
		queue.Post(func() { app.export(path) })
	}()
}

func (app *App) export(path string) {
	cur := app.session.Switcher.Current()
	if cur == nil {
		return
	}
	stats, err := export.WriteFile(path, cur.Context().Scene, export.DefaultOptions())
	if err != nil {
		app.log.Error("export failed", zap.String("path", path), zap.Error(err))
		app.notify(fmt.Sprintf("Export failed: %v", err))
		return
	}
	app.notify(fmt.Sprintf("Exported %d meshes to %s", stats.Meshes, path))
}

// saveSelection stores the running demo and preset as the startup choice
// in the config file that was loaded, or the user config when none was.
func (app *App) saveSelection() {
	name, preset := app.session.Selection()
	if name == "" {
		return
	}
	cfg := *app.cfg
	cfg.Demo.Name = name
	cfg.Demo.Preset = preset

	path := app.cfgPath
	var err error
	if path != "" {
		err = cfg.SaveTo(path)
	} else {
		path, err = cfg.Save()
	}
	if err != nil {
		app.notify(fmt.Sprintf("Saving settings failed: %v", err))
		return
	}
	app.cfg.Demo = cfg.Demo
	app.notify("Saved settings to " + path)
}

func (app *App) notify(msg string) {
	app.message = msg
	app.messageTime = time.Now()
}
