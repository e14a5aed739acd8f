package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/slateworks/postparse/internal/config"
	"github.com/slateworks/postparse/internal/handler"
	"github.com/slateworks/postparse/internal/logger"
	"github.com/slateworks/postparse/internal/middleware"
	"github.com/slateworks/postparse/internal/router"
	"github.com/slateworks/postparse/internal/server"
)

// shutdownTimeout bounds how long inflight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// Config failures happen before the logger exists; write
		// plainly and exit.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg)

	srv := server.New(cfg, &log)

	handlers := handler.NewHandlers(srv)
	middlewares := middleware.NewMiddlewares(cfg, log)
	e := router.New(handlers, middlewares)

	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
