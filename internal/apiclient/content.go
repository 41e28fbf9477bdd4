package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/villafrance/frontend/internal/domain"
)

// === Marketing Content Methods ===

func (c *Client) Inspiration(ctx context.Context) ([]domain.InspirationCategory, error) {
	resp, err := c.do(ctx, "GET", "/inspiration", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var categories []domain.InspirationCategory
	if err := decode(resp.Body, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) SpecialOffers(ctx context.Context, activeOnly bool) ([]domain.SpecialOffer, error) {
	params := url.Values{"active_only": []string{strconv.FormatBool(activeOnly)}}

	resp, err := c.do(ctx, "GET", "/special-offers", params, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var offers []domain.SpecialOffer
	if err := decode(resp.Body, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}
