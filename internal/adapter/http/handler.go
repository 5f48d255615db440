package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"emops/internal/core/port"
	"emops/internal/queue"
)

// RecomputePublisher enqueues recompute events for the worker. Nil means
// no broker is configured and the recompute endpoint is disabled.
type RecomputePublisher interface {
	Publish(ev queue.RecomputeEvent) error
}

// Handler is the inbound HTTP adapter. It holds the usecases, a structured
// logger and the chi router with every route registered. Tenant routes are
// prefixed with the client slug.
type Handler struct {
	campaigns port.CampaignUseCase
	reports   port.ReportUseCase
	publisher RecomputePublisher
	logger    *slog.Logger
	shareTTL  time.Duration
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, reports port.ReportUseCase, publisher RecomputePublisher, shareTTL time.Duration, logger *slog.Logger) *Handler {
	h := &Handler{
		campaigns: campaigns,
		reports:   reports,
		publisher: publisher,
		logger:    logger,
		shareTTL:  shareTTL,
	}
	r := chi.NewRouter()

	// The dashboard frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	r.Get("/public/reports/{token}", h.handlePublicReport)

	r.Route("/api/v1/{client}", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCampaignCreate)
			r.Get("/", h.handleCampaignList)
			r.Get("/{id}", h.handleCampaignGet)
			r.Put("/{id}", h.handleCampaignUpdate)
			r.Delete("/{id}", h.handleCampaignDelete)
		})
		r.Get("/reports", h.handleReport)
		r.Get("/reports/export.csv", h.handleReportExport)
		r.Post("/reports/share", h.handleReportShare)
		r.Post("/recompute", h.handleRecompute)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
