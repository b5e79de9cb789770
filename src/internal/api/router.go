package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/keen-menu/src/internal/config"
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

// NewRouter creates the HTTP router with all API endpoints.
func NewRouter(general *config.GeneralConfig, store *menu.Store) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(RequestLogger(general.RequestLogFormat))
	if general.CORSEnabled {
		r.Use(CORS)
	}

	var metrics *Metrics
	if general.IsMetricsEnabled() {
		metrics = NewMetrics(store)
		r.Use(metrics.Middleware)
	}

	h := NewHandler(store, general.IsMergeUpdate())

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)
	r.Get("/", h.Root)
	r.Get("/health", h.CheckHealth)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api/menu", func(r chi.Router) {
		r.Get("/", h.ListMenu)
		r.With(ValidateBody(menu.CreateRules(), true)).Post("/", h.CreateMenuItem)
		r.Get("/{id}", h.GetMenuItem)
		r.With(ValidateBody(menu.UpdateRules(), !general.IsMergeUpdate())).Put("/{id}", h.UpdateMenuItem)
		r.Delete("/{id}", h.DeleteMenuItem)
	})

	return r
}
