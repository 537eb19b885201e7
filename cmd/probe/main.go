// Command probe checks a running greeter server and exits 0 when it is
// healthy and 1 otherwise. It is meant for container health checks:
//
//	probe [-timeout 3s] [url]
//
// Without url the server is expected at http://localhost:{SERVER_PORT}.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-greeter/internal/adapter"
	"github.com/MKhiriev/go-greeter/internal/config"
	"github.com/MKhiriev/go-greeter/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.NewLogger("probe")

	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	timeout := fs.Duration("timeout", 3*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	baseURL := fs.Arg(0)
	if baseURL == "" {
		cfg, err := config.GetStructuredConfig(nil, os.Environ(), log)
		if err != nil {
			log.Error().Err(err).Msg("error getting configs")
			return 1
		}
		baseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}

	checker, err := adapter.NewHealthChecker(adapter.HealthCheckerConfig{
		BaseURL: baseURL,
		Timeout: *timeout,
	})
	if err != nil {
		log.Error().Err(err).Msg("error creating health checker")
		return 1
	}

	if err = checker.Check(context.Background()); err != nil {
		log.Error().Err(err).Str("url", baseURL).Msg("server is unhealthy")
		return 1
	}

	log.Info().Str("url", baseURL).Msg("server is healthy")
	return 0
}
