package web

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the page routes and the embedded static assets.
func RegisterRoutes(r chi.Router, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static", assetsWithCache(staticFS)))

	r.Get("/", h.Home)
	r.Get("/gifted", h.Gifted)
}
