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

	"github.com/joho/godotenv"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/handler"
	"github.com/passgen/passgen-go/internal/repository"
	"github.com/passgen/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		recorder service.EventRecorder
		counter  service.EventCounter
	)
	if cfg.DatabaseDSN == "" {
		slog.Info("DATABASE_DSN not set, usage stats disabled")
	} else if db, err := repository.NewDB(cfg.DatabaseDSN); err != nil {
		slog.Warn("database connection failed, usage stats disabled", "error", err)
	} else {
		defer db.Close()

		events := repository.NewEventRepository(db)
		if err := events.EnsureSchema(ctx); err != nil {
			slog.Warn("creating password_events table failed", "error", err)
		}
		recorder, counter = events, events
	}

	strengthService := service.NewStrengthService()
	genService := service.NewGeneratorService(recorder, strengthService)

	routerCfg := handler.RouterConfig{
		Generator:      handler.NewGeneratorHandler(genService),
		Strength:       handler.NewStrengthHandler(strengthService),
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	if cfg.AdminPasswordHash != "" {
		if err := crypto.ValidateHash(cfg.AdminPasswordHash); err != nil {
			slog.Error("invalid ADMIN_PASSWORD_HASH", "error", err)
			os.Exit(1)
		}
		adminService := service.NewAdminService(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiry)
		routerCfg.Admin = handler.NewAdminHandler(adminService, service.NewStatsService(counter))
	} else {
		slog.Info("ADMIN_PASSWORD_HASH not set, admin routes disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(ctx, routerCfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
