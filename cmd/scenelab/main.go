// Package main is the SceneLab viewer: demos render into an ImGui viewport
// next to a control window with the demo's parameter panel.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/scenelab/internal/config"
	"github.com/Faultbox/scenelab/internal/logger"
)

func main() {
	// Parse CLI flags first
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

	logger.Info("=== SceneLab ===", zap.String("config", cfgPath))
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := NewApp(cfg, cfgPath)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
	logger.Info("closed normally")
}
