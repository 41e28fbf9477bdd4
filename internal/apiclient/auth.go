package apiclient

import (
	"context"
	"net/http"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/domain"
)

// Login authenticates and returns the issued token plus the profile it
// belongs to.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	creds := api.LoginRequest{Email: email, Password: password}

	resp, err := c.do(ctx, "POST", "/auth/login", nil, creds)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var auth api.AuthResponse
	if err := decode(resp.Body, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Register creates an account. Like login it returns token+user so the
// caller can establish the session immediately.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	resp, err := c.do(ctx, "POST", "/auth/register", nil, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var auth api.AuthResponse
	if err := decode(resp.Body, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, "POST", "/auth/logout", nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

func (c *Client) Profile(ctx context.Context) (*domain.UserProfile, error) {
	resp, err := c.do(ctx, "GET", "/auth/profile", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var user domain.UserProfile
	if err := decode(resp.Body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*domain.UserProfile, error) {
	resp, err := c.do(ctx, "PUT", "/auth/profile", nil, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var user domain.UserProfile
	if err := decode(resp.Body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
