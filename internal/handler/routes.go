package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/middleware"
)

// RouterConfig carries the handlers and limits the router is built from.
// Admin is optional; without it the admin routes are not mounted.
type RouterConfig struct {
	Generator *GeneratorHandler
	Strength  *StrengthHandler
	Admin     *AdminHandler

	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the API router. ctx bounds the rate limiter's background work.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", cfg.Generator.HandleGenerate)
		r.Post("/api/v1/strength", cfg.Strength.HandleCheck)
	})

	if cfg.Admin != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(ctx, 1, 5))
			r.Post("/api/v1/admin/token", cfg.Admin.HandleToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret, crypto.RoleAdmin))
			r.Get("/api/v1/admin/stats", cfg.Admin.HandleStats)
		})
	}

	return r
}
