package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"

	"github.com/lifeofnimah/host-with-nimah/config"
	"github.com/lifeofnimah/host-with-nimah/internal/api"
	in_memory "github.com/lifeofnimah/host-with-nimah/internal/storage/in-memory"
	key_value "github.com/lifeofnimah/host-with-nimah/internal/storage/key-value"
	"github.com/lifeofnimah/host-with-nimah/internal/storage/sqlite"
	"github.com/lifeofnimah/host-with-nimah/internal/usecase"
)

// Run wires storages, usecases and the HTTP server, then blocks until
// shutdown. Redis and SQLite are optional: without them sessions and
// bookings live in memory, which is fine for local development.
func Run(cfg *config.Config, logger zerolog.Logger) error {
	ctx := context.Background()

	var sessionStorage usecase.SessionStorage
	if cfg.Storage.RedisEndpoint != "" {
		rdb := redis.NewClient(
			&redis.Options{
				Addr: cfg.Storage.RedisEndpoint,
			},
		)
		sessionStorage = key_value.NewSessionStorage(rdb)
		logger.Info().Str("endpoint", cfg.Storage.RedisEndpoint).Msg("using redis session storage")
	} else {
		sessionStorage = in_memory.NewSessionStorage()
		logger.Info().Msg("using in-memory session storage")
	}

	var bookingStorage usecase.BookingStorage
	if cfg.Storage.SQLitePath != "" {
		sqliteStorage, err := sqlite.NewBookingStorage(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open booking storage: %w", err)
		}
		defer sqliteStorage.Close()
		bookingStorage = sqliteStorage
		logger.Info().Str("path", cfg.Storage.SQLitePath).Msg("using sqlite booking storage")
	} else {
		bookingStorage = in_memory.NewBookingStorage()
		logger.Info().Msg("using in-memory booking storage")
	}

	assistant := usecase.NewAssistantUsecase(cfg.OpenAI, logger)
	if cfg.OpenAI.OpenAIAPIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY not set, assistant will reply with the offline notice")
	}

	chatUsecase := usecase.NewChatUsecase(
		usecase.ChatUsecaseDeps{
			SessionStorage: sessionStorage,
			Assistant:      assistant,
			Logger:         logger,
		},
	)
	bookingUsecase := usecase.NewBookingUsecase(
		usecase.BookingUsecaseDeps{
			BookingStorage: bookingStorage,
		},
	)

	router := api.NewRouter(logger, chatUsecase, bookingUsecase)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var serveErr error
	wg := conc.NewWaitGroup()
	wg.Go(
		func() {
			logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				serveErr = err
			}
			stop <- syscall.SIGTERM
		},
	)

	<-stop
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	wg.Wait()

	if serveErr != nil {
		return fmt.Errorf("failed to serve: %w", serveErr)
	}
	logger.Info().Msg("server stopped")
	return nil
}
