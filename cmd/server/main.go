package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifeofnimah/host-with-nimah/config"
	"github.com/lifeofnimah/host-with-nimah/internal/app"
)

func main() {
	cfgPath := flag.String("config", "", "path to yaml config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		fallbackLogger := zerolog.New(os.Stderr)
		fallbackLogger.Fatal().Err(err).Msg("failed to load config")
	}

	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
}
