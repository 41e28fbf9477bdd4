package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villafrance/frontend/internal/domain"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestStoreSetAndClear(t *testing.T) {
	store := NewStore()
	user := &domain.UserProfile{Id: "u1", Email: "ada@example.com", FirstName: "Ada"}

	store.Set("t1", user)
	sess := store.Snapshot()
	assert.Equal(t, "t1", sess.Token)
	assert.Equal(t, user, sess.User)

	store.Clear()
	sess = store.Snapshot()
	assert.Empty(t, sess.Token)
	assert.Nil(t, sess.User)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Clear()
	store.Clear()
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}

func TestStoreSetReplacesWholeSession(t *testing.T) {
	store := NewStore()
	store.Set("t1", &domain.UserProfile{Id: "u1"})
	store.Set("t2", nil)

	sess := store.Snapshot()
	assert.Equal(t, "t2", sess.Token)
	assert.Nil(t, sess.User, "stale user must not survive a Set")
}

func TestAuthenticated(t *testing.T) {
	t.Run("empty session", func(t *testing.T) {
		assert.False(t, Session{}.Authenticated())
	})

	t.Run("opaque token counts as live", func(t *testing.T) {
		assert.True(t, Session{Token: "not-a-jwt"}.Authenticated())
	})

	t.Run("live jwt", func(t *testing.T) {
		tok := signedToken(t, time.Now().Add(time.Hour))
		assert.True(t, Session{Token: tok}.Authenticated())
	})

	t.Run("expired jwt", func(t *testing.T) {
		tok := signedToken(t, time.Now().Add(-time.Hour))
		assert.False(t, Session{Token: tok}.Authenticated())
	})
}

func TestCookieRoundTrip(t *testing.T) {
	user := &domain.UserProfile{Id: "u1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
	sess := Session{Token: "t1", User: user}

	w := httptest.NewRecorder()
	WriteCookies(w, sess, false)

	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	got := FromRequest(r)
	assert.Equal(t, "t1", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, "ada@example.com", got.User.Email)
	assert.Equal(t, "Ada Lovelace", got.User.FullName())
}

func TestFromRequestIgnoresOrphanUserCookie(t *testing.T) {
	raw, err := json.Marshal(domain.UserProfile{Id: "u1"})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{
		Name:  UserCookie,
		Value: base64.URLEncoding.EncodeToString(raw),
	})

	got := FromRequest(r)
	assert.Empty(t, got.Token)
	assert.Nil(t, got.User, "user cookie without token cookie is not a session")
}

func TestFromRequestDiscardsMalformedUserCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "t1"})
	r.AddCookie(&http.Cookie{Name: UserCookie, Value: "%%%not-base64%%%"})

	got := FromRequest(r)
	assert.Equal(t, "t1", got.Token, "token survives a bad user cookie")
	assert.Nil(t, got.User)
}

func TestExpireCookies(t *testing.T) {
	w := httptest.NewRecorder()
	ExpireCookies(w, false)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	}
}
