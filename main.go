package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/animated-image-go/app"
	"github.com/soocke/animated-image-go/config"
)

func main() {
	cfgPath := flag.String("config", "animated_image.json", "config file (.json, .yaml or .yml)")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime stats")
	flag.Parse()

	bootLogger := NewLogger(slog.LevelInfo)
	if err := config.LoadDotEnv(); err != nil {
		bootLogger.Warn("dotenv load failed", "error", err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		bootLogger.Error("config load failed, using defaults", "path", *cfgPath, "error", err)
		cfg = config.DefaultConfig()
	}
	if skipped := cfg.ApplyEnv(); len(skipped) > 0 {
		bootLogger.Warn("ignored invalid environment overrides", "vars", skipped)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		bootLogger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	c, err := app.BuildContainer(cfg, *cfgPath, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	application := app.NewApp("Animated Image", c)
	application.Start()
}
