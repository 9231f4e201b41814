package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"greeter/internal/adapters/cli"
	"greeter/internal/application"
	"greeter/internal/config"
	"greeter/internal/infrastructure/i18n"
	"greeter/internal/infrastructure/logging"
)

func main() {
	// A broken config only stops the commands that need it; the greeting
	// itself always runs.
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fallback, fbErr := logging.New("", "")
		if fbErr != nil {
			fmt.Fprintln(os.Stderr, fbErr)
			os.Exit(1)
		}
		logger = fallback
		logger.Warn("invalid log settings, using defaults", zap.Error(err))
	}
	defer logger.Sync() // flushes buffer, if any

	if cfgErr != nil {
		logger.Warn("config not loaded, using defaults", zap.Error(cfgErr))
	}

	catalog, err := i18n.NewCatalog(logger, cfg.Catalog.File)
	if err != nil {
		logger.Fatal("failed to build greeting catalog", zap.Error(err))
	}

	deps := cli.Deps{
		Greetings:  application.NewGreetingService(catalog, i18n.DisplayNamer{}),
		Translator: catalog,
		Config:     cfg,
		ConfigErr:  cfgErr,
		Logger:     logger,
	}
	if err := cli.Execute(os.Args[1:], deps); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
