package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/villafrance/frontend/internal/domain"
	"github.com/villafrance/frontend/internal/fallback"
	"github.com/villafrance/frontend/internal/logger"
)

type DestinationPageData struct {
	Destination domain.Destination
	Properties  fallback.Result[[]domain.Property]
}

func (h *Handler) DestinationGetHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	api, _ := h.bind(r)
	ctx := r.Context()

	var data DestinationPageData

	destination, err := api.Destination(ctx, slug)
	if err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Warn("destination fetch failed, trying bundled set", "slug", slug, "error", err)
		bundled, ok := bundledDestination(slug)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data.Destination = bundled
	} else {
		data.Destination = *destination
	}

	data.Properties = fallback.Resolve("destination properties", func() ([]domain.Property, error) {
		return api.DestinationProperties(ctx, slug)
	}, fallback.Properties())
	if h.handleSessionExpiry(w, r, data.Properties.Err) {
		return
	}

	h.renderTemplate(w, r, "destination.html", data)
}

func bundledDestination(slug string) (domain.Destination, bool) {
	for _, d := range fallback.Destinations() {
		if d.Slug == slug {
			return d, true
		}
	}
	return domain.Destination{}, false
}
