package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/handlers"
	custommiddleware "github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/middleware"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/config"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	assetService *service.AssetService,
	entryService *service.EntryService,
	auditService *service.AuditService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService, auditService, cfg.Ledger.Mode)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.Get("/audit", systemHandler.Audit)
		})

		r.Route("/asset", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(assetService)
			r.Get("/", assetHandler.AllAssets)
			r.Post("/", assetHandler.CreateAsset)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", assetHandler.GetAsset)
				r.Delete("/", assetHandler.DeleteAsset)
			})
		})

		r.Route("/entry", func(r chi.Router) {
			entryHandler := handlers.NewEntryHandler(entryService)
			r.Post("/", entryHandler.CreateEntry)

			r.Route("/asset/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", entryHandler.EntriesPerAsset)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", entryHandler.GetEntry)
				r.Put("/", entryHandler.UpdateEntry)
				r.Delete("/", entryHandler.DeleteEntry)
			})
		})
	})

	return r
}
