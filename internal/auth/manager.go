// Package auth orchestrates login, registration and logout against the
// backend and keeps the session store in step with the outcome.
package auth

import (
	"context"
	"errors"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/apiclient"
	"github.com/villafrance/frontend/internal/domain"
	internal_errors "github.com/villafrance/frontend/internal/errors"
	"github.com/villafrance/frontend/internal/logger"
)

// User-facing reasons for the two failure kinds the manager
// distinguishes: backend-reported rejections carry the backend's own
// words; transport failures get a generic retry message.
const (
	genericFailure     = "Something went wrong. Please try again."
	badCredentials     = "Invalid email or password."
	sessionExpiredNote = "Your session has expired. Please log in again."
)

// Backend is the slice of the API client the manager needs.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*domain.UserProfile, error)
}

// Store is the mutation surface the manager owns; only it and the API
// client's 401 path may write the session.
type Store interface {
	Set(token string, user *domain.UserProfile)
	Clear()
	Token() string
	User() *domain.UserProfile
}

// Result is the normalized outcome of an auth flow. It never wraps a Go
// error: views render Error verbatim on failure.
type Result struct {
	Success        bool
	User           *domain.UserProfile
	Error          string
	SessionExpired bool
}

type Manager struct {
	backend Backend
	store   Store
}

func NewManager(backend Backend, store Store) *Manager {
	return &Manager{backend: backend, store: store}
}

// Login authenticates and, on success, persists token+user atomically.
// On failure the store is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	auth, err := m.backend.Login(ctx, email, password)
	if err != nil {
		logger.Log.Info("login rejected", "email", email, "error", err)
		return failure(err, badCredentials)
	}

	m.store.Set(auth.AccessToken, &auth.User)
	return Result{Success: true, User: &auth.User}
}

// Register creates the account and establishes the session from the
// returned token+user.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) Result {
	auth, err := m.backend.Register(ctx, req)
	if err != nil {
		logger.Log.Info("registration rejected", "email", req.Email, "error", err)
		return failure(err, genericFailure)
	}

	m.store.Set(auth.AccessToken, &auth.User)
	return Result{Success: true, User: &auth.User}
}

// UpdateProfile persists the refreshed profile, keeping the token.
func (m *Manager) UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) Result {
	user, err := m.backend.UpdateProfile(ctx, req)
	if err != nil {
		logger.Log.Warn("profile update failed", "error", err)
		return failure(err, sessionExpiredNote)
	}

	m.store.Set(m.store.Token(), user)
	return Result{Success: true, User: user}
}

// Logout clears the local session no matter what the backend says: the
// requirement is "logged out on this device", not "server acknowledged".
func (m *Manager) Logout(ctx context.Context) {
	if err := m.backend.Logout(ctx); err != nil {
		logger.Log.Warn("backend logout failed, clearing local session anyway", "error", err)
	}
	m.store.Clear()
}

// failure maps an API error to a displayable reason. Backend-reported
// 4xx reasons pass through verbatim; a 401 means the credential was
// rejected outright; anything else is a transport problem.
func failure(err error, unauthorizedMsg string) Result {
	if errors.Is(err, apiclient.ErrSessionExpired) {
		return Result{Error: unauthorizedMsg, SessionExpired: true}
	}
	var statusErr *internal_errors.ErrorWithStatusCode
	if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
		return Result{Error: statusErr.Message}
	}
	return Result{Error: genericFailure}
}
