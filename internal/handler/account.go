package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/auth"
	"github.com/villafrance/frontend/internal/domain"
	"github.com/villafrance/frontend/internal/logger"
	"github.com/villafrance/frontend/internal/session"
)

type AccountPageData struct {
	Profile domain.UserProfile
}

type BookingsPageData struct {
	Bookings []domain.Booking
}

// AccountGetHandler shows the profile. The live profile wins; the
// cookie copy stands in when the fetch fails, since this page is not a
// marketing section and must reflect account state.
func (h *Handler) AccountGetHandler(w http.ResponseWriter, r *http.Request) {
	apiClient, store := h.bind(r)
	if h.requireSession(w, r, store) {
		return
	}

	data := AccountPageData{}
	profile, err := apiClient.Profile(r.Context())
	if err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Warn("profile fetch failed, rendering cached profile", "error", err)
		if cached := store.User(); cached != nil {
			data.Profile = *cached
		}
	} else {
		data.Profile = *profile
	}

	h.renderTemplate(w, r, "account.html", data)
}

func (h *Handler) ProfilePostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/account"
	apiClient, store := h.bind(r)
	if h.requireSession(w, r, store) {
		return
	}

	firstName := r.FormValue("first_name")
	lastName := r.FormValue("last_name")
	phone := r.FormValue("phone")
	req := api.ProfileUpdateRequest{}
	if firstName != "" {
		req.FirstName = &firstName
	}
	if lastName != "" {
		req.LastName = &lastName
	}
	if phone != "" {
		req.Phone = &phone
	}

	manager := auth.NewManager(apiClient, store)
	result := manager.UpdateProfile(r.Context(), req)
	if !result.Success {
		if result.SessionExpired {
			session.ExpireCookies(w, h.Public.SecureCookies)
			h.redirectWithFlash(w, r, "/login", flashCookieError, result.Error)
			return
		}
		h.redirectWithFlash(w, r, targetURL, flashCookieError, result.Error)
		return
	}

	// the store now carries the refreshed profile; re-persist it
	session.WriteCookies(w, store.Snapshot(), h.Public.SecureCookies)
	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Profile updated.")
}

func (h *Handler) BookingsGetHandler(w http.ResponseWriter, r *http.Request) {
	apiClient, store := h.bind(r)
	if h.requireSession(w, r, store) {
		return
	}

	data := BookingsPageData{}
	bookings, err := apiClient.Bookings(r.Context())
	if err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Error("bookings fetch failed", "error", err)
		h.renderTemplateWithError(w, r, "bookings.html", data, "We could not load your bookings. Please try again.")
		return
	}
	data.Bookings = bookings

	h.renderTemplate(w, r, "bookings.html", data)
}

func (h *Handler) BookingCancelHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	targetURL := "/account/bookings"
	apiClient, store := h.bind(r)
	if h.requireSession(w, r, store) {
		return
	}

	if err := apiClient.CancelBooking(r.Context(), id); err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Error("cancelling booking via API", "booking", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, displayReason(err))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess, "Booking cancelled.")
}

func (h *Handler) BookingPayHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	targetURL := "/account/bookings"
	apiClient, store := h.bind(r)
	if h.requireSession(w, r, store) {
		return
	}

	booking, err := apiClient.ProcessPayment(r.Context(), id)
	if err != nil {
		if h.handleSessionExpiry(w, r, err) {
			return
		}
		logger.Log.Error("processing payment via API", "booking", id, "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, displayReason(err))
		return
	}

	h.redirectWithFlash(w, r, targetURL, flashCookieSuccess,
		"Payment "+booking.PaymentStatus+" for booking "+booking.Id)
}
