package handler

import (
	"net/http"

	"github.com/sudo-self/links/internal/config"
)

// PageHandler serves the public profile page.
type PageHandler struct {
	site config.Site
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(site config.Site) *PageHandler {
	return &PageHandler{site: site}
}

// Show serves GET /. The like widget on the page talks to /api/likes; theme
// preference and the offline like mirror stay in the browser's localStorage.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	render(w, "index.html", h.site)
}
