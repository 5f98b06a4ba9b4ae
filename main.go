// @title Image Preference Study API
// @version 1.0
// @description Backend for a single-page image preference study: participants pick the best image per folder, answers are exported as CSV.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"image_study_backend/internal/app"
	"image_study_backend/internal/config"
	"image_study_backend/pkg/configwatcher"
	"image_study_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	watch := flag.Bool("watch-config", true, "hot-reload config.yaml on change")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(*configDir+"/config.yaml", application.ApplyConfig)
	}

	application.Run()
}
