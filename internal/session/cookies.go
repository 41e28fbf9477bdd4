package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/villafrance/frontend/internal/domain"
	"github.com/villafrance/frontend/internal/logger"
)

// Fixed cookie names; the durable client-side storage for credentials.
const (
	TokenCookie = "access_token"
	UserCookie  = "user"
)

const cookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// FromRequest reads the persisted session out of the request cookies.
// A user cookie without a token cookie is ignored.
func FromRequest(r *http.Request) Session {
	tc, err := r.Cookie(TokenCookie)
	if err != nil || tc.Value == "" {
		return Session{}
	}

	sess := Session{Token: tc.Value}
	if uc, err := r.Cookie(UserCookie); err == nil && uc.Value != "" {
		if user, err := decodeUserCookie(uc.Value); err == nil {
			sess.User = user
		} else {
			logger.Log.Warn("discarding malformed user cookie", "error", err)
		}
	}
	return sess
}

// StoreFromRequest builds a per-request store seeded from cookies.
func StoreFromRequest(r *http.Request) *Store {
	s := NewStore()
	s.Init(FromRequest(r))
	return s
}

// WriteCookies persists the session to the browser.
func WriteCookies(w http.ResponseWriter, sess Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     UserCookie,
		Value:    encodeUserCookie(sess.User),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ExpireCookies removes both credentials from the browser.
func ExpireCookies(w http.ResponseWriter, secure bool) {
	for _, name := range []string{TokenCookie, UserCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// The profile is JSON in a cookie; base64 keeps the value cookie-safe.
func encodeUserCookie(user *domain.UserProfile) string {
	if user == nil {
		return ""
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(raw)
}

func decodeUserCookie(value string) (*domain.UserProfile, error) {
	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	var user domain.UserProfile
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
