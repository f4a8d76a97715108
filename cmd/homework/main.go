package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-homework-dispatch/internal/config"
	"github.com/MKhiriev/go-homework-dispatch/internal/demo"
	"github.com/MKhiriev/go-homework-dispatch/internal/logger"
	"github.com/MKhiriev/go-homework-dispatch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("homework")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.WithLevel(cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	var app demo.Runner
	app, err = demo.NewApp(os.Stdout, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init demo app error")
	}

	ctx := log.WithContext(context.Background())
	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("demo run error")
	}
}

func printBuildInfo() {
	for _, line := range models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Lines() {
		fmt.Println(line)
	}
}
