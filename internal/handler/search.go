package handler

import (
	"net/http"
	"strconv"

	"github.com/villafrance/frontend/internal/domain"
	"github.com/villafrance/frontend/internal/logger"
)

type SearchPageData struct {
	Regions    []string
	Filters    domain.SearchFilters
	Properties []domain.Property
	TotalCount int
	Failed     bool
}

// SearchGetHandler runs the hero form's availability search. A failed
// or empty search renders the no-results message; bundled content never
// substitutes for search results.
func (h *Handler) SearchGetHandler(w http.ResponseWriter, r *http.Request) {
	api, _ := h.bind(r)

	filters := filtersFromQuery(r)
	data := SearchPageData{Regions: searchRegions, Filters: filters}

	result, err := api.SearchProperties(r.Context(), filters)
	if err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Warn("property search failed", "error", err)
		data.Failed = true
	} else {
		data.Properties = result.Properties
		data.TotalCount = result.TotalCount
	}

	h.renderTemplate(w, r, "search.html", data)
}

func filtersFromQuery(r *http.Request) domain.SearchFilters {
	q := r.URL.Query()
	guests, _ := strconv.Atoi(q.Get("guests"))
	return domain.SearchFilters{
		Region:   q.Get("region"),
		CheckIn:  q.Get("check_in"),
		CheckOut: q.Get("check_out"),
		Guests:   guests,
	}
}
