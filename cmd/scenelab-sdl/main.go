// Package main is the plain SDL host: one window, no panel. Keys 1-7 switch
// demos, Tab cycles presets, the mouse orbits, F12 saves a screenshot and
// Esc quits.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/config"
	"github.com/Faultbox/scenelab/internal/engine/camera"
	"github.com/Faultbox/scenelab/internal/engine/input"
	"github.com/Faultbox/scenelab/internal/engine/renderer"
	"github.com/Faultbox/scenelab/internal/engine/window"
	"github.com/Faultbox/scenelab/internal/host"
	"github.com/Faultbox/scenelab/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, cfgPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, cfgPath); err != nil {
		logger.Error("scenelab-sdl failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("closed normally")
}

func run(cfg *config.Config, cfgPath string) error {
	win, err := window.New(window.Config{
		Title:      "SceneLab",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	r, err := renderer.New(renderer.Config{
		MaxShadowMapSize: cfg.Graphics.ShadowMapSize,
		Samples:          cfg.Graphics.MSAA,
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer r.Close()

	sess, err := host.NewSession(cfg, cfgPath, r, win)
	if err != nil {
		return err
	}
	defer sess.Close()

	in := input.New()
	var pointer camera.Pointer
	title := ""

	for {
		if quit := in.Update(); quit {
			return nil
		}
		for _, e := range in.Events() {
			if e.Type == input.EventWindowResize {
				win.NotifyResize()
				break
			}
		}
		for _, c := range in.Commands() {
			switch c.Action {
			case input.ActionQuit:
				return nil
			case input.ActionDemo:
				sess.SelectIndex(c.Index)
			case input.ActionNextPreset:
				sess.Switcher.CyclePreset()
			case input.ActionScreenshot:
				if _, err := sess.Screenshot(r); err != nil {
					logger.Warn("screenshot failed", zap.Error(err))
				}
			}
		}

		var controls *camera.OrbitControls
		if cur := sess.Switcher.Current(); cur != nil {
			controls = cur.Context().Controls
		}
		in.Drive(&pointer, controls)

		sess.Frame()

		if name, preset := sess.Selection(); name+"/"+preset != title {
			title = name + "/" + preset
			win.SetTitle(fmt.Sprintf("SceneLab - %s (%s)", name, preset))
		}

		r.Present(win.DrawableSize())
		win.SwapBuffers()
	}
}
