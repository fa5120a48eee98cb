// Package web implements the HTML driving adapter serving the site's pages.
package web

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/a-h/templ"

	"github.com/beatzboy/site/internal/adapter/driving/web/templates"
	"github.com/beatzboy/site/internal/application"
	"github.com/beatzboy/site/internal/domain/model"
)

// Handler is the web driving adapter that renders the site's pages.
type Handler struct {
	site          *application.Site
	splashEnabled bool
	random        func() float64
	logger        *slog.Logger
}

// NewHandler creates a Handler. With splashEnabled false pages render their
// content view immediately.
func NewHandler(site *application.Site, splashEnabled bool, logger *slog.Logger) *Handler {
	return &Handler{
		site:          site,
		splashEnabled: splashEnabled,
		random:        rand.Float64,
		logger:        logger,
	}
}

// Home renders the home page behind its splash gate.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	meta := h.site.Meta()
	home := h.site.Home()

	h.renderPage(w, r, model.PageHome,
		templates.Splash(toSplashViewModel(home.Splash, h.random)),
		templates.Home(toHomeViewModel(meta, home, h.random)),
	)
}

// Gifted renders the album page behind its splash gate.
func (h *Handler) Gifted(w http.ResponseWriter, r *http.Request) {
	meta := h.site.Meta()
	gifted := h.site.Gifted()

	h.renderPage(w, r, model.PageGifted,
		templates.Splash(toSplashViewModel(gifted.Splash, h.random)),
		templates.Gifted(toGiftedViewModel(meta, gifted)),
	)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, page model.PageName, splash, content templ.Component) {
	meta := toMetaViewModel(h.site.Meta())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if !h.splashEnabled || r.Method == http.MethodHead {
		h.renderBuffered(w, r, page, templates.Layout(meta, content))
		return
	}

	gate, err := h.site.NewGate(page)
	if err != nil {
		h.logger.Error("failed to create splash gate", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	rc := http.NewResponseController(w)
	layout := templates.Layout(meta, gatedBody(gate, splash, content, rc.Flush))

	err = layout.Render(r.Context(), w)
	switch {
	case err == nil:
		h.logger.Debug("page ready", "page", page, "state", gate.State())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Debug("page deactivated before ready", "page", page, "state", gate.State())
	default:
		// Headers are already sent; the response is cut short.
		h.logger.Error("failed to render page", "page", page, "error", err)
	}
}

// renderBuffered renders a component fully before writing so that a
// failure can still produce a 500.
func (h *Handler) renderBuffered(w http.ResponseWriter, r *http.Request, page model.PageName, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}
