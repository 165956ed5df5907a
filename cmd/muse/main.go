package main

import (
	"log"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"muse/internal/app"
	"muse/internal/assets"
	"muse/internal/config"
	"muse/internal/logger"
	"muse/internal/shutdown"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Settings could not be loaded: %v", err)
	}

	appLogger := logger.New(logger.ParseLevel(settings.LogLevel), settings.LogJSON, os.Stderr)
	appLogger.Info("Main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"bundle_id":  settings.BundleID,
		"go_version": runtime.Version(),
		"log_level":  settings.LogLevel,
	})

	// An empty identifier still starts the app; provisioning is skipped.
	var fyneApp fyne.App
	if settings.BundleID != "" {
		fyneApp = fyneapp.NewWithID(settings.BundleID)
	} else {
		fyneApp = fyneapp.New()
	}

	application, err := app.NewApplication(fyneApp, settings, assets.Bundle(), appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(application)
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	shutdownManager.Shutdown()
	appLogger.Info("Main", "terminated", nil)
}
