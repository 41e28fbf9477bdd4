package handler

import (
	"net/http"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/auth"
	"github.com/villafrance/frontend/internal/logger"
	"github.com/villafrance/frontend/internal/session"
	"github.com/villafrance/frontend/internal/webutil"
)

func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "login.html", nil)
}

func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	apiClient, store := h.bind(r)
	manager := auth.NewManager(apiClient, store)

	result := manager.Login(r.Context(), email, password)
	if !result.Success {
		h.setFlash(w, flashCookieError, result.Error)
		h.setFlash(w, emailPrefillCookie, email)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	session.WriteCookies(w, store.Snapshot(), h.Public.SecureCookies)
	logger.Log.Info("login", "user", result.User.Email)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) RegisterGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "register.html", nil)
}

func (h *Handler) RegisterPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/register"

	req := api.RegisterRequest{
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Phone:     r.FormValue("phone"),
	}
	if err := webutil.Validate(req); err != nil {
		h.setFlash(w, flashCookieError, "Please fill in all required fields (password: 6 characters minimum).")
		h.setFlash(w, emailPrefillCookie, req.Email)
		http.Redirect(w, r, targetURL, http.StatusSeeOther)
		return
	}

	apiClient, store := h.bind(r)
	manager := auth.NewManager(apiClient, store)

	result := manager.Register(r.Context(), req)
	if !result.Success {
		h.setFlash(w, flashCookieError, result.Error)
		h.setFlash(w, emailPrefillCookie, req.Email)
		http.Redirect(w, r, targetURL, http.StatusSeeOther)
		return
	}

	session.WriteCookies(w, store.Snapshot(), h.Public.SecureCookies)
	logger.Log.Info("registration", "user", result.User.Email)
	h.redirectWithFlash(w, r, "/", flashCookieSuccess, "Welcome, "+result.User.FirstName+"!")
}

// LogoutHandler always ends the local session; the backend call is
// best-effort.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	apiClient, store := h.bind(r)
	manager := auth.NewManager(apiClient, store)

	manager.Logout(r.Context())

	session.ExpireCookies(w, h.Public.SecureCookies)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
