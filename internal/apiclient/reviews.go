package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/domain"
)

// === Review Methods ===

func (c *Client) PropertyReviews(ctx context.Context, propertyId string) ([]domain.Review, error) {
	resp, err := c.do(ctx, "GET", fmt.Sprintf("/properties/%s/reviews", propertyId), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var reviews []domain.Review
	if err := decode(resp.Body, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, propertyId string, req api.CreateReviewRequest) (*domain.Review, error) {
	resp, err := c.do(ctx, "POST", fmt.Sprintf("/properties/%s/reviews", propertyId), nil, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var review domain.Review
	if err := decode(resp.Body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) Review(ctx context.Context, id string) (*domain.Review, error) {
	resp, err := c.do(ctx, "GET", fmt.Sprintf("/reviews/%s", id), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var review domain.Review
	if err := decode(resp.Body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) UpdateReview(ctx context.Context, id string, req api.UpdateReviewRequest) (*domain.Review, error) {
	resp, err := c.do(ctx, "PUT", fmt.Sprintf("/reviews/%s", id), nil, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var review domain.Review
	if err := decode(resp.Body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	resp, err := c.do(ctx, "DELETE", fmt.Sprintf("/reviews/%s", id), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}
