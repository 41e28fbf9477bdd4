package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/villafrance/frontend/internal/domain"
)

// === Destination Methods ===

func (c *Client) Destinations(ctx context.Context) ([]domain.Destination, error) {
	resp, err := c.do(ctx, "GET", "/destinations", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var destinations []domain.Destination
	if err := decode(resp.Body, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *Client) Destination(ctx context.Context, slug string) (*domain.Destination, error) {
	resp, err := c.do(ctx, "GET", fmt.Sprintf("/destinations/%s", slug), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var destination domain.Destination
	if err := decode(resp.Body, &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

func (c *Client) DestinationProperties(ctx context.Context, slug string) ([]domain.Property, error) {
	resp, err := c.do(ctx, "GET", fmt.Sprintf("/destinations/%s/properties", slug), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var properties []domain.Property
	if err := decode(resp.Body, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}
