package handler

import (
	"html/template"
	"net/http"

	"github.com/villafrance/frontend/internal/apiclient"
	"github.com/villafrance/frontend/internal/config"
	"github.com/villafrance/frontend/internal/markdown"
)

// Handler renders the site's pages. Each request binds the shared API
// client to a session store seeded from that request's cookies.
type Handler struct {
	Templates map[string]*template.Template
	Public    config.Public
	API       *apiclient.Client
	Markdown  *markdown.Renderer
}

func New(templates map[string]*template.Template, publicCfg config.Public, apiClient *apiclient.Client, md *markdown.Renderer) *Handler {
	return &Handler{
		Templates: templates,
		Public:    publicCfg,
		API:       apiClient,
		Markdown:  md,
	}
}

func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/favicon.ico")
}

func (h *Handler) getTemplate(name string) (*template.Template, bool) {
	tmpl, ok := h.Templates[name]
	return tmpl, ok
}
