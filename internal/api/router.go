package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/bank-accounts-api/internal/api/handlers"
	"github.com/baharkarakas/bank-accounts-api/internal/config"
	"github.com/baharkarakas/bank-accounts-api/internal/metrics"
	"github.com/baharkarakas/bank-accounts-api/internal/middleware"
	"github.com/baharkarakas/bank-accounts-api/internal/services"
)

func NewRouter(cfg config.Config, svc *services.AccountService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	h := handlers.NewBankAccountHandler(svc, cfg.AppName)

	r.Route("/api", func(r chi.Router) {
		r.Route("/bank-accounts", func(r chi.Router) {
			r.Post("/", h.Create)
			r.Put("/", h.Replace)
			r.Patch("/", h.PartialUpdate)
			r.Get("/", h.List)
			r.Get("/{id}", h.Get)
			r.Delete("/{id}", h.Delete)
		})
	})

	return r
}
