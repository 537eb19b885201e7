package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-greeter/internal/config"
	"github.com/MKhiriev/go-greeter/internal/handler"
	"github.com/MKhiriev/go-greeter/internal/logger"
	"github.com/MKhiriev/go-greeter/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	os.Exit(run())
}

// run returns the process exit code so that deferred cleanups happen before
// os.Exit.
func run() int {
	bootstrap := logger.NewLogger("server")

	cfg, err := config.Load(bootstrap)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		bootstrap.Error().Err(err).Msg("error getting configs")
		return 1
	}

	log, err := logger.New("server", cfg.LoggerOptions())
	if err != nil {
		bootstrap.Error().Err(err).Msg("error creating logger")
		return 1
	}
	defer log.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	handlers, err := handler.NewHandlers(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return 1
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return 1
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return 1
	}

	return 0
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
