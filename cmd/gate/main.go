package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-account-gate/internal/adapter"
	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/handler"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/server"
	"github.com/MKhiriev/go-account-gate/internal/service"
	"github.com/MKhiriev/go-account-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("account-gate")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithMinLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = leveled

	log.Debug().Any("config", cfg).Msg("received configs")

	accountAdapter, err := adapter.NewHTTPAccountAdapter(cfg.Upstream, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating account service adapter")
	}

	services, err := service.NewServices(accountAdapter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
