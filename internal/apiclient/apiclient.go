package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/villafrance/frontend/internal/api"
	internal_errors "github.com/villafrance/frontend/internal/errors"
	"github.com/villafrance/frontend/internal/session"
)

const requestTimeout = 15 * time.Second

// ErrSessionExpired is returned for any 401, whatever the endpoint; by
// then the bound session store has already been cleared. Callers route
// it to the login page.
var ErrSessionExpired = errors.New("session expired")

// Client handles all communication with the backend API.
type Client struct {
	BaseURL    string
	HttpClient *http.Client

	store *session.Store
}

// New creates a new client for interacting with the backend. baseURL is
// the API base (origin + /api).
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HttpClient: &http.Client{Timeout: requestTimeout},
	}
}

// WithStore returns a copy of the client bound to a session store. The
// store supplies the bearer token and absorbs the 401 side effect.
func (c *Client) WithStore(store *session.Store) *Client {
	bound := *c
	bound.store = store
	return &bound
}

// do is the single, unified helper for making API requests. It attaches
// the bearer token when one is stored and handles 401 globally: clear
// the store, fail with ErrSessionExpired. Every other status is handed
// back to the caller untouched.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	fullURL := c.BaseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.store != nil {
		if token := c.store.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if c.store != nil {
			c.store.Clear()
		}
		return nil, ErrSessionExpired
	}

	return resp, nil
}

// apiError converts a non-2xx response into an error carrying the
// backend's status and its body-carried reason.
func apiError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	detail := string(bytes.TrimSpace(bodyBytes))
	var errBody api.ErrorResponse
	if json.Unmarshal(bodyBytes, &errBody) == nil && errBody.Detail != "" {
		detail = errBody.Detail
	}
	if detail == "" {
		detail = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}

	return &internal_errors.ErrorWithStatusCode{Message: detail, StatusCode: resp.StatusCode}
}

func decode(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("cannot decode backend response: %w", err)
	}
	return nil
}
