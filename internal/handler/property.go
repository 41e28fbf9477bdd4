package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/domain"
	"github.com/villafrance/frontend/internal/fallback"
	"github.com/villafrance/frontend/internal/logger"
	"github.com/villafrance/frontend/internal/webutil"
)

type PropertyPageData struct {
	Property domain.Property
	Reviews  fallback.Result[[]domain.Review]
}

func (h *Handler) PropertyGetHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	apiClient, _ := h.bind(r)
	ctx := r.Context()

	var data PropertyPageData

	property, err := apiClient.Property(ctx, id)
	if err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Warn("property fetch failed, trying bundled set", "id", id, "error", err)
		bundled, ok := bundledProperty(id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data.Property = bundled
	} else {
		data.Property = *property
	}

	data.Reviews = fallback.Resolve("property reviews", func() ([]domain.Review, error) {
		return apiClient.PropertyReviews(ctx, id)
	}, nil)
	if h.handleSessionExpiry(w, r, data.Reviews.Err) {
		return
	}

	h.renderTemplate(w, r, "property.html", data)
}

// BookingPostHandler creates a booking from the property page form.
func (h *Handler) BookingPostHandler(w http.ResponseWriter, r *http.Request) {
	propertyId := mux.Vars(r)["id"]
	targetURL := "/properties/" + propertyId
	apiClient, store := h.bind(r)

	if h.requireSession(w, r, store) {
		return
	}

	guests, _ := strconv.Atoi(r.FormValue("guests"))
	req := api.CreateBookingRequest{
		PropertyId:      propertyId,
		CheckIn:         r.FormValue("check_in"),
		CheckOut:        r.FormValue("check_out"),
		Guests:          guests,
		SpecialRequests: r.FormValue("special_requests"),
	}
	if err := webutil.Validate(req); err != nil {
		h.redirectWithFlash(w, r, targetURL, flashCookieError, "Please fill in the booking dates and guest count.")
		return
	}

	booking, err := apiClient.CreateBooking(r.Context(), req)
	if err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Error("creating booking via API", "property", propertyId, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, displayReason(err))
		return
	}

	h.redirectWithFlash(w, r, "/account/bookings", flashCookieSuccess,
		"Booking request received. Reference: "+booking.Id)
}

// ReviewPostHandler submits a review from the property page form.
func (h *Handler) ReviewPostHandler(w http.ResponseWriter, r *http.Request) {
	propertyId := mux.Vars(r)["id"]
	targetURL := "/properties/" + propertyId
	apiClient, store := h.bind(r)

	if h.requireSession(w, r, store) {
		return
	}

	rating, _ := strconv.Atoi(r.FormValue("rating"))
	req := api.CreateReviewRequest{
		PropertyId: propertyId,
		Rating:     rating,
		Title:      r.FormValue("title"),
		Content:    r.FormValue("content"),
	}
	if err := webutil.Validate(req); err != nil {
		h.redirectWithFlash(w, r, targetURL, flashCookieError, "A rating between 1 and 5, a title and a review text are required.")
		return
	}

	if _, err := apiClient.CreateReview(r.Context(), propertyId, req); err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Error("creating review via API", "property", propertyId, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, displayReason(err))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Thank you for your review!")
}

func bundledProperty(id string) (domain.Property, bool) {
	for _, p := range fallback.Properties() {
		if p.Id == id || p.Slug == id {
			return p, true
		}
	}
	return domain.Property{}, false
}
