// Package main is the entry point for the SafeReach API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/safereach/backend/internal/config"
	"github.com/pkordes/safereach/backend/internal/handler"
	"github.com/pkordes/safereach/backend/internal/notify"
	"github.com/pkordes/safereach/backend/internal/places"
	"github.com/pkordes/safereach/backend/internal/repo"
	"github.com/pkordes/safereach/backend/internal/service"
	"github.com/pkordes/safereach/backend/migrations"
	"github.com/pkordes/safereach/backend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})).With("env", cfg.Environment)
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		db := stdlib.OpenDBFromPool(pool)
		n, err := migrations.Up(context.Background(), db)
		db.Close()
		if err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied", "count", n)
	}

	// --- SMS --------------------------------------------------------------
	var provider notify.Sender
	if cfg.TwilioEnabled() {
		provider = notify.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
		slog.Info("sms provider configured", "provider", "twilio")
	} else {
		provider = notify.Log{}
		slog.Warn("twilio credentials not set; messages will be logged, not sent")
	}
	sms := notify.New(provider, notify.DefaultOptions)

	// --- Places -----------------------------------------------------------
	// Left as a nil interface when unconfigured so PlacesService reports
	// ErrPlacesDisabled.
	var lookup service.PlacesLookup
	if cfg.GMapsAPIKey != "" {
		g, err := places.NewGoogle(cfg.GMapsAPIKey)
		if err != nil {
			slog.Error("failed to create places client", "error", err)
			os.Exit(1)
		}
		lookup = g
	} else {
		slog.Warn("GMAPS_API_KEY not set; nearby-places is disabled")
	}

	// --- Services ---------------------------------------------------------
	trips := service.NewTripService(repo.NewTripRepo(pool), repo.NewNotificationRepo(pool), sms)
	server := handler.NewServer(handler.Deps{
		Trips:       trips,
		Locations:   service.NewLocationService(repo.NewLocationRepo(pool)),
		Messages:    service.NewMessageService(sms),
		Places:      service.NewPlacesService(lookup),
		Retention:   service.NewRetentionService(repo.NewRetentionRepo(pool)),
		DB:          pool,
		Environment: cfg.Environment,
	})

	router := handler.NewRouter(server, handler.RouterOptions{
		Logger:            logger,
		CORSOrigins:       cfg.CORSOrigins,
		APIKeys:           cfg.APIKeys,
		FrontendDir:       cfg.FrontendDir,
		OpenAPI:           spec.OpenAPI,
		RateLimitDisabled: cfg.RateLimitDisabled,
	})

	// --- HTTP Server ------------------------------------------------------
	// WriteTimeout covers a check-arrival that fans out to several contacts
	// with retries.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	// Arrival alerts run detached from request contexts; let them finish.
	if err := sms.Close(ctx); err != nil {
		slog.Error("sms drain incomplete", "error", err)
	}
	slog.Info("server stopped")
}
