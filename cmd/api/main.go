// Package main is the entry point for the daycount API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zapponejosh/daycount/internal/api"
	"github.com/zapponejosh/daycount/internal/calendar"
	"github.com/zapponejosh/daycount/internal/config"
	"github.com/zapponejosh/daycount/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	log.Info("starting daycount API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	catalog := calendar.NewDefaultCatalog(log)
	if cfg.CalendarsFile != "" {
		if err := loadCalendars(catalog, cfg.CalendarsFile); err != nil {
			log.Error("failed to load calendar definitions",
				slog.String("file", cfg.CalendarsFile),
				slog.Any("error", err),
			)
			os.Exit(1)
		}
	}
	if _, err := catalog.Get(cfg.DefaultCalendar); err != nil {
		log.Error("invalid default calendar", slog.Any("error", err))
		os.Exit(1)
	}

	handlers := api.NewHandlers(catalog, cfg, log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Drain in-flight requests on SIGINT/SIGTERM.
	done := make(chan struct{})
	go func() {
		defer close(done)
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("server forced shutdown", slog.Any("error", err))
		}
	}()

	log.Info("daycount API ready", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	<-done
	log.Info("server stopped")
}

// loadCalendars registers the calendars defined in a YAML file.
func loadCalendars(catalog *calendar.Catalog, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	defs, err := calendar.LoadDefinitions(f)
	if err != nil {
		return err
	}
	_, err = catalog.AddDefinitions(defs)
	return err
}
