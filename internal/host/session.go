// Package host wires configuration, assets and the demo switcher for the
// windowed binaries. A Session is driven once per frame from the thread
// owning the GL context.
package host

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/assets"
	"github.com/Faultbox/scenelab/internal/config"
	"github.com/Faultbox/scenelab/internal/demo"
	"github.com/Faultbox/scenelab/internal/demos"
	"github.com/Faultbox/scenelab/internal/engine/debug"
	"github.com/Faultbox/scenelab/internal/logger"
)

// Capturer reads back the last rendered frame as bottom-up RGBA rows.
type Capturer interface {
	Capture() (pixels []byte, width, height int)
}

// Session owns the demo switcher of one window.
type Session struct {
	Registry *demo.Registry
	Switcher *demo.Switcher
	Loader   *assets.Loader

	log     *zap.Logger
	manager *assets.Manager
	shots   *debug.Screenshots
	watcher *config.Watcher
	start   time.Time
	now     func() time.Time
}

// DemoOptions builds the per-demo options from cfg.
func DemoOptions(cfg *config.Config, loader *assets.Loader) demo.Options {
	names := demo.DefaultAssetNames()
	if cfg.Assets.Font != "" {
		names.Font = cfg.Assets.Font
	}
	if cfg.Assets.EnvMap != "" {
		names.EnvMap = cfg.Assets.EnvMap
	}
	if cfg.Assets.StudioEnvMap != "" {
		names.StudioEnvMap = cfg.Assets.StudioEnvMap
	}
	if cfg.Assets.Textures != "" {
		names.Textures = cfg.Assets.Textures
	}
	return demo.Options{
		Preset:        cfg.Demo.Preset,
		MaxPixelRatio: cfg.Graphics.MaxPixelRatio,
		Assets:        names,
		Loader:        loader,
	}
}

// NewSession selects cfg's demo on r and s. The demo starts on the first
// Frame. With a non-empty cfgPath and cfg.Watch set, edits to the file
// switch demo and preset live.
func NewSession(cfg *config.Config, cfgPath string, r demo.Renderer, s demo.Surface) (*Session, error) {
	manager := assets.NewDirManager(cfg.Assets.Dir)
	loader := assets.NewLoader(manager, assets.NewQueue())
	reg := demos.Registry()

	sess := &Session{
		Registry: reg,
		Switcher: demo.NewSwitcher(reg, r, s, DemoOptions(cfg, loader)),
		Loader:   loader,
		log:      logger.Named("host"),
		manager:  manager,
		shots:    debug.NewScreenshots(cfg.ScreenshotDir, "scenelab"),
		now:      time.Now,
	}
	sess.start = sess.now()

	if err := sess.Switcher.Change(cfg.Demo.Name, cfg.Demo.Preset); err != nil {
		manager.Close()
		return nil, fmt.Errorf("selecting demo: %w", err)
	}

	if cfg.Watch && cfgPath != "" {
		w, err := config.Watch(cfgPath, func(c *config.Config) {
			loader.Queue().Post(func() { sess.Apply(c) })
		})
		if err != nil {
			sess.log.Warn("config watch disabled", zap.String("path", cfgPath), zap.Error(err))
		} else {
			sess.watcher = w
		}
	}
	return sess, nil
}

// Apply adopts the log level of a reloaded config and switches to the demo
// and preset it names when they differ from what runs.
func (s *Session) Apply(cfg *config.Config) {
	if logger.Level() != logger.ParseLevel(cfg.Logging.Level) {
		logger.SetLevel(cfg.Logging.Level)
		s.log.Info("log level changed", zap.String("level", cfg.Logging.Level))
	}
	name, preset := s.Selection()
	if cfg.Demo.Name == name && (cfg.Demo.Preset == "" || cfg.Demo.Preset == preset) {
		return
	}
	if err := s.Switcher.Change(cfg.Demo.Name, cfg.Demo.Preset); err != nil {
		s.log.Warn("ignoring config selection", zap.String("demo", cfg.Demo.Name), zap.String("preset", cfg.Demo.Preset), zap.Error(err))
	}
}

// Frame applies queued main-thread work and runs one frame.
func (s *Session) Frame() {
	s.Loader.Queue().Drain()
	elapsed := float64(s.now().Sub(s.start)) / float64(time.Millisecond)
	if err := s.Switcher.Frame(elapsed); err != nil {
		s.log.Error("demo failed to start", zap.Error(err))
	}
}

// Selection returns the running demo and preset, empty when none runs.
func (s *Session) Selection() (name, preset string) {
	app := s.Switcher.Current()
	if app == nil || app.Context() == nil {
		return "", ""
	}
	return app.Demo().Name(), app.Context().Preset
}

// SelectIndex switches to the i-th registered demo with its default
// preset. Out of range indices are ignored.
func (s *Session) SelectIndex(i int) {
	names := s.Registry.Names()
	if i < 0 || i >= len(names) {
		return
	}
	s.Select(names[i], "")
}

// Select switches to demo name with preset.
func (s *Session) Select(name, preset string) {
	if err := s.Switcher.Change(name, preset); err != nil {
		s.log.Warn("select demo", zap.String("demo", name), zap.String("preset", preset), zap.Error(err))
	}
}

// Screenshot saves the last frame c rendered, labelled with the selection.
func (s *Session) Screenshot(c Capturer) (string, error) {
	pixels, w, h := c.Capture()
	name, preset := s.Selection()
	label := name
	if preset != "" {
		label += "-" + preset
	}
	if label == "" {
		label = "empty"
	}
	path, err := s.shots.SaveGLPixels(pixels, w, h, label)
	if err != nil {
		return "", err
	}
	s.log.Info("screenshot saved", zap.String("path", path))
	return path, nil
}

// Close stops the watcher, closes the running demo and waits for pending
// loads.
func (s *Session) Close() {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			s.log.Warn("closing config watcher", zap.Error(err))
		}
	}
	s.Switcher.Close()
	s.Loader.Wait()
	s.Loader.Queue().Drain()
	hits, misses := s.manager.Cache().Stats()
	s.manager.Close()
	s.log.Info("session closed", zap.Int("cache_hits", hits), zap.Int("cache_misses", misses))
}
