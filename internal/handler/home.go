package handler

import (
	"errors"
	"net/http"

	"github.com/villafrance/frontend/internal/apiclient"
	"github.com/villafrance/frontend/internal/domain"
	"github.com/villafrance/frontend/internal/fallback"
)

// Regions offered by the hero search selector, in display order.
var searchRegions = []string{
	domain.AllRegions,
	"Loire, Vendée and Brittany",
	"Burgundy",
	"Dordogne and South-West",
	"Occitanie (inc. Languedoc)",
	"Provence",
	"Côte d'Azur and Riviera",
	"Island of Corsica",
}

const (
	latestPropertiesLimit = 8
	blogTeaserLimit       = 4
)

type HomePageData struct {
	Regions      []string
	Destinations fallback.Result[[]domain.Destination]
	Properties   fallback.Result[[]domain.Property]
	Inspiration  fallback.Result[[]domain.InspirationCategory]
	BlogPosts    fallback.Result[[]domain.BlogPost]
	Offers       fallback.Result[[]domain.SpecialOffer]
	PressLogos   []domain.PressLogo
}

// HomeGetHandler renders the landing page. Every marketing section is
// fetched independently and degrades to bundled content on its own.
func (h *Handler) HomeGetHandler(w http.ResponseWriter, r *http.Request) {
	api, _ := h.bind(r)
	ctx := r.Context()

	data := HomePageData{
		Regions: searchRegions,
		Destinations: fallback.Resolve("destinations", func() ([]domain.Destination, error) {
			return api.Destinations(ctx)
		}, fallback.Destinations()),
		Properties: fallback.Resolve("latest properties", func() ([]domain.Property, error) {
			return api.Properties(ctx, apiclient.ListOptions{Limit: latestPropertiesLimit})
		}, fallback.Properties()),
		Inspiration: fallback.Resolve("inspiration", func() ([]domain.InspirationCategory, error) {
			return api.Inspiration(ctx)
		}, fallback.Inspiration()),
		BlogPosts: fallback.Resolve("blog teasers", func() ([]domain.BlogPost, error) {
			return api.BlogPosts(ctx, 0, blogTeaserLimit)
		}, fallback.BlogPosts()),
		Offers: fallback.Resolve("special offers", func() ([]domain.SpecialOffer, error) {
			return api.SpecialOffers(ctx, true)
		}, fallback.SpecialOffers()),
		PressLogos: fallback.PressLogos(),
	}

	// a 401 from any section still voids the session globally
	if h.handleSessionExpiry(w, r, errors.Join(
		data.Destinations.Err, data.Properties.Err, data.Inspiration.Err,
		data.BlogPosts.Err, data.Offers.Err,
	)) {
		return
	}

	h.renderTemplate(w, r, "index.html", data)
}
