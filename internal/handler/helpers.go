package handler

import (
	"encoding/base64"
	"errors"
	"html/template"
	"net/http"

	"github.com/villafrance/frontend/internal/apiclient"
	internal_errors "github.com/villafrance/frontend/internal/errors"
	"github.com/villafrance/frontend/internal/session"
)

const (
	flashCookieError   = "flash_error"
	flashCookieSuccess = "flash_success"
	emailPrefillCookie = "email_prefill"
)

// bind seeds a session store from the request cookies and returns an
// API client bound to it.
func (h *Handler) bind(r *http.Request) (*apiclient.Client, *session.Store) {
	store := session.StoreFromRequest(r)
	return h.API.WithStore(store), store
}

// handleSessionExpiry routes the API client's 401 signal: the bound
// store is already cleared, so expire the cookies and send the visitor
// to the login page. Reports whether it handled the error.
func (h *Handler) handleSessionExpiry(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, apiclient.ErrSessionExpired) {
		return false
	}
	session.ExpireCookies(w, h.Public.SecureCookies)
	h.redirectWithFlash(w, r, "/login", flashCookieError, "Please log in to continue")
	return true
}

// requireSession redirects to the login page when no live session is
// attached to the request. Reports whether the caller should return.
func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request, store *session.Store) bool {
	if store.Authenticated() {
		return false
	}
	h.redirectWithFlash(w, r, "/login", flashCookieError, "Please log in to continue")
	return true
}

// displayReason picks the message shown for a failed account-affecting
// call: backend-reported reasons verbatim, transport failures generic.
func displayReason(err error) string {
	var statusErr *internal_errors.ErrorWithStatusCode
	if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
		return template.HTMLEscapeString(statusErr.Message)
	}
	return "Something went wrong. Please try again."
}

// Flash cookies carry one-shot messages across a redirect. Values are
// base64 encoded for safe storage of special characters.

func (h *Handler) setFlash(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    base64.URLEncoding.EncodeToString([]byte(value)),
		Path:     "/",
		MaxAge:   300, // 5 minutes, enough for the redirect
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// consumeFlash reads and expires a flash cookie.
func (h *Handler) consumeFlash(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, targetURL, cookieName, message string) {
	h.setFlash(w, cookieName, message)
	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}
