package handler

import (
	"encoding/base64"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/apiclient"
	"github.com/villafrance/frontend/internal/config"
	"github.com/villafrance/frontend/internal/domain"
	"github.com/villafrance/frontend/internal/markdown"
	"github.com/villafrance/frontend/internal/session"
)

// Page templates reduced to the fields under test.
var testPages = map[string]string{
	"index.html": `{{range .Data.Destinations.Data}}[dest:{{.Name}}]{{end}}` +
		`{{if .Data.Destinations.FromFallback}}(bundled-destinations){{end}}` +
		`{{range .Data.Properties.Data}}[prop:{{.Name}}]{{end}}` +
		`{{if .Data.Properties.FromFallback}}(bundled-properties){{end}}` +
		`{{range .Data.PressLogos}}[press:{{.Name}}]{{end}}`,
	"search.html": `{{if .Data.Failed}}no-results{{end}}` +
		`{{range .Data.Properties}}[prop:{{.Name}}]{{end}}total:{{.Data.TotalCount}}`,
	"property.html":    `[property:{{.Data.Property.Name}}]reviews:{{len .Data.Reviews.Data}}`,
	"destination.html": `[destination:{{.Data.Destination.Name}}]`,
	"login.html":       `login-page error:{{.Common.Error}} prefill:{{.Common.EmailPrefill}}`,
	"register.html":    `register-page`,
	"account.html":     `[account:{{.Data.Profile.Email}}]`,
	"bookings.html":    `{{range .Data.Bookings}}[booking:{{.Id}}:{{.Status}}]{{end}}error:{{.Common.Error}}`,
}

func newTestHandler(t *testing.T, backendURL string) *Handler {
	t.Helper()

	templates := make(map[string]*template.Template)
	for name, text := range testPages {
		templates[name] = template.Must(template.New(name).Parse(text))
	}

	cfg := config.Public{BackendOrigin: backendURL, Port: "0"}
	return New(templates, cfg, apiclient.New(cfg.APIBase()), markdown.New())
}

// deadBackend points at a port nothing listens on.
const deadBackend = "http://127.0.0.1:1"

func flashValue(t *testing.T, resp *http.Response, name string) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name && c.Value != "" {
			decoded, err := base64.URLEncoding.DecodeString(c.Value)
			require.NoError(t, err)
			return string(decoded)
		}
	}
	return ""
}

func sessionCookies(token string, user *domain.UserProfile) []*http.Cookie {
	w := httptest.NewRecorder()
	session.WriteCookies(w, session.Session{Token: token, User: user}, false)
	return w.Result().Cookies()
}

func TestHomeRendersBundledContentWhenBackendDown(t *testing.T) {
	h := newTestHandler(t, deadBackend)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	h.HomeGetHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "(bundled-destinations)")
	assert.Contains(t, body, "(bundled-properties)")
	assert.Contains(t, body, "[prop:Maison Beauregard]")
	assert.Contains(t, body, "[press:The Sunday Times]")
}

func TestHomePrefersLiveContent(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/destinations"):
			json.NewEncoder(w).Encode([]domain.Destination{{Id: "d1", Name: "Live Riviera", Slug: "riviera"}})
		default:
			w.Write([]byte("[]"))
		}
	}))
	defer backend.Close()

	h := newTestHandler(t, backend.URL)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	h.HomeGetHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "[dest:Live Riviera]")
	assert.NotContains(t, body, "(bundled-destinations)")
	// an empty live answer is still a live answer
	assert.NotContains(t, body, "(bundled-properties)")
	assert.NotContains(t, body, "[prop:Maison Beauregard]")
}

func TestHomeExpiredSessionRedirectsToLogin(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	h := newTestHandler(t, backend.URL)

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range sessionCookies("stale-token", &domain.UserProfile{Id: "u1"}) {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.HomeGetHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "a 401 on a marketing fetch must not degrade to fallback content")
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	expired := map[string]bool{}
	for _, c := range resp.Cookies() {
		if c.MaxAge < 0 {
			expired[c.Name] = true
		}
	}
	assert.True(t, expired[session.TokenCookie], "token cookie must be expired")
	assert.True(t, expired[session.UserCookie], "user cookie must be expired")
}

func TestBlogIndexExpiredSessionRedirectsToLogin(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	h := newTestHandler(t, backend.URL)

	req := httptest.NewRequest("GET", "/blog", nil)
	for _, c := range sessionCookies("stale-token", nil) {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.BlogGetHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestSearchFailureShowsNoResultsNotBundledContent(t *testing.T) {
	h := newTestHandler(t, deadBackend)

	req := httptest.NewRequest("GET", "/search?region=Provence&guests=4", nil)
	w := httptest.NewRecorder()
	h.SearchGetHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "no-results")
	assert.NotContains(t, body, "Maison Beauregard")
}

func TestSearchRendersLiveResults(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties/search", r.URL.Path)
		assert.Equal(t, "Provence", r.URL.Query().Get("region"))
		json.NewEncoder(w).Encode(api.SearchResponse{
			Properties: []domain.Property{{Id: "1", Name: "Villa Azur"}},
			TotalCount: 1,
		})
	}))
	defer backend.Close()

	h := newTestHandler(t, backend.URL)

	req := httptest.NewRequest("GET", "/search?region=Provence", nil)
	w := httptest.NewRecorder()
	h.SearchGetHandler(w, req)

	body := w.Body.String()
	assert.Contains(t, body, "[prop:Villa Azur]")
	assert.Contains(t, body, "total:1")
}

func TestPropertyPageFallsBackToBundledThenNotFound(t *testing.T) {
	h := newTestHandler(t, deadBackend)

	t.Run("bundled property by slug", func(t *testing.T) {
		req := mux.SetURLVars(httptest.NewRequest("GET", "/properties/maison-beauregard", nil),
			map[string]string{"id": "maison-beauregard"})
		w := httptest.NewRecorder()
		h.PropertyGetHandler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "[property:Maison Beauregard]")
	})

	t.Run("unknown id", func(t *testing.T) {
		req := mux.SetURLVars(httptest.NewRequest("GET", "/properties/nope", nil),
			map[string]string{"id": "nope"})
		w := httptest.NewRecorder()
		h.PropertyGetHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDestinationPageFallsBackToBundled(t *testing.T) {
	h := newTestHandler(t, deadBackend)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/destinations/dordogne-south-west", nil),
		map[string]string{"slug": "dordogne-south-west"})
	w := httptest.NewRecorder()
	h.DestinationGetHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "[destination:Dordogne and South-West]")
}

func TestLoginPostSuccessEstablishesSession(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		json.NewEncoder(w).Encode(api.AuthResponse{
			AccessToken: "t1",
			TokenType:   "bearer",
			User:        domain.UserProfile{Id: "u1", Email: "ada@example.com", FirstName: "Ada"},
		})
	}))
	defer backend.Close()

	h := newTestHandler(t, backend.URL)

	form := url.Values{"email": {"ada@example.com"}, "password": {"hunter22"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.LoginPostHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	var tokenCookie, userCookie *http.Cookie
	for _, c := range resp.Cookies() {
		switch c.Name {
		case session.TokenCookie:
			tokenCookie = c
		case session.UserCookie:
			userCookie = c
		}
	}
	require.NotNil(t, tokenCookie)
	assert.Equal(t, "t1", tokenCookie.Value)
	require.NotNil(t, userCookie)
	assert.NotEmpty(t, userCookie.Value)
}

func TestLoginPostRejectedSetsFlashAndPrefill(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	h := newTestHandler(t, backend.URL)

	form := url.Values{"email": {"ada@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.LoginPostHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Equal(t, "Invalid email or password.", flashValue(t, resp, flashCookieError))
	assert.Equal(t, "ada@example.com", flashValue(t, resp, emailPrefillCookie))

	// no session cookie on failure
	for _, c := range resp.Cookies() {
		assert.NotEqual(t, session.TokenCookie, c.Name)
	}
}

func TestRegisterPostValidatesBeforeCallingBackend(t *testing.T) {
	h := newTestHandler(t, deadBackend)

	form := url.Values{
		"email":      {"grace@example.com"},
		"password":   {"short"}, // below minimum length
		"first_name": {"Grace"},
	}
	req := httptest.NewRequest("POST", "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.RegisterPostHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/register", resp.Header.Get("Location"))
	assert.Contains(t, flashValue(t, resp, flashCookieError), "required fields")
}

func TestLogoutClearsCookiesEvenWhenBackendDown(t *testing.T) {
	h := newTestHandler(t, deadBackend)

	req := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range sessionCookies("t1", &domain.UserProfile{Id: "u1"}) {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.LogoutHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	for _, c := range resp.Cookies() {
		if c.Name == session.TokenCookie || c.Name == session.UserCookie {
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	}
}

func TestAccountRequiresSession(t *testing.T) {
	h := newTestHandler(t, deadBackend)

	req := httptest.NewRequest("GET", "/account", nil)
	w := httptest.NewRecorder()
	h.AccountGetHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Equal(t, "Please log in to continue", flashValue(t, resp, flashCookieError))
}

func TestAccountFallsBackToCachedProfile(t *testing.T) {
	h := newTestHandler(t, deadBackend)

	req := httptest.NewRequest("GET", "/account", nil)
	for _, c := range sessionCookies("t1", &domain.UserProfile{Id: "u1", Email: "ada@example.com"}) {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.AccountGetHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "[account:ada@example.com]")
}

func TestBookingsExpiredSessionRedirectsToLogin(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	h := newTestHandler(t, backend.URL)

	req := httptest.NewRequest("GET", "/account/bookings", nil)
	for _, c := range sessionCookies("stale-token", nil) {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.BookingsGetHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	expired := false
	for _, c := range resp.Cookies() {
		if c.Name == session.TokenCookie && c.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired, "token cookie must be expired after a 401")
}

func TestBookingPostValidatesForm(t *testing.T) {
	h := newTestHandler(t, deadBackend)

	form := url.Values{"check_in": {"2026-07-01"}} // missing check_out and guests
	req := mux.SetURLVars(
		httptest.NewRequest("POST", "/properties/42/book", strings.NewReader(form.Encode())),
		map[string]string{"id": "42"})
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range sessionCookies("t1", nil) {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.BookingPostHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/properties/42", resp.Header.Get("Location"))
	assert.Contains(t, flashValue(t, resp, flashCookieError), "booking dates")
}

func TestBookingPostSuccessRedirectsToBookings(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))

		var req api.CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "42", req.PropertyId)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Booking{Id: "b1", PropertyId: "42", Status: domain.BookingPending})
	}))
	defer backend.Close()

	h := newTestHandler(t, backend.URL)

	form := url.Values{
		"check_in":  {"2026-07-01"},
		"check_out": {"2026-07-08"},
		"guests":    {"4"},
	}
	req := mux.SetURLVars(
		httptest.NewRequest("POST", "/properties/42/book", strings.NewReader(form.Encode())),
		map[string]string{"id": "42"})
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range sessionCookies("t1", nil) {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.BookingPostHandler(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/account/bookings", resp.Header.Get("Location"))
	assert.Contains(t, flashValue(t, resp, flashCookieSuccess), "b1")
}

func TestBackendRejectionReasonShownVerbatim(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Property is not available for these dates"})
	}))
	defer backend.Close()

	h := newTestHandler(t, backend.URL)

	form := url.Values{
		"check_in":  {"2026-07-01"},
		"check_out": {"2026-07-08"},
		"guests":    {"4"},
	}
	req := mux.SetURLVars(
		httptest.NewRequest("POST", "/properties/42/book", strings.NewReader(form.Encode())),
		map[string]string{"id": "42"})
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range sessionCookies("t1", nil) {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.BookingPostHandler(w, req)

	resp := w.Result()
	assert.Equal(t, "Property is not available for these dates", flashValue(t, resp, flashCookieError))
}
