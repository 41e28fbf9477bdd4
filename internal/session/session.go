package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/villafrance/frontend/internal/domain"
)

// Session is the authenticated identity held for the current visitor.
// Token is present iff someone is logged in; User only travels with it.
type Session struct {
	Token string
	User  *domain.UserProfile
}

func (s Session) Authenticated() bool {
	return s.Token != "" && !tokenExpired(s.Token)
}

// Store owns the session. Everything else reads it or asks the Manager
// (or the apiclient's 401 path) to mutate it. Set and Clear are atomic;
// Clear on an empty store is a no-op.
type Store struct {
	mu   sync.RWMutex
	sess Session
}

func NewStore() *Store {
	return &Store{}
}

// Init seeds the store from persisted state (cookies, on this side of
// the wire).
func (s *Store) Init(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
}

func (s *Store) Set(token string, user *domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{Token: token, User: user}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{}
}

func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.Token
}

func (s *Store) User() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.User
}

func (s *Store) Authenticated() bool {
	return s.Snapshot().Authenticated()
}

// tokenExpired inspects the bearer token's exp claim without verifying
// the signature (the frontend holds no signing key; the backend stays
// the authority). Opaque or claimless tokens are assumed live.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
