// Package httphandler is the HTTP driving adapter for operational endpoints
// and the middleware stack shared by every route.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/beatzboy/site/internal/application"
)

// Handler serves operational JSON endpoints.
type Handler struct {
	healthSvc *application.HealthService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(healthSvc *application.HealthService, logger *slog.Logger) *Handler {
	return &Handler{
		healthSvc: healthSvc,
		logger:    logger,
	}
}

// RegisterRoutes registers the operational routes on r.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/healthz", h.Health)
}

// Health handles GET /healthz. It answers 200 when the site can serve pages
// and 503 otherwise.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	report := h.healthSvc.Check(r.Context())

	status := http.StatusOK
	if report.Status != "ok" {
		status = http.StatusServiceUnavailable
		h.logger.Warn("health check not ok", "status", report.Status)
	}

	resp := HealthResponse{
		Status:        report.Status,
		Pages:         report.Pages,
		UptimeSeconds: int64(report.Uptime / time.Second),
	}
	if !report.ContentLoadedAt.IsZero() {
		resp.ContentLoadedAt = report.ContentLoadedAt.UTC().Format(time.RFC3339)
	}

	writeJSON(w, status, resp)
}
