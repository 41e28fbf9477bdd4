package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/villafrance/frontend/internal/domain"
)

// === Blog Methods ===

func (c *Client) BlogPosts(ctx context.Context, skip, limit int) ([]domain.BlogPost, error) {
	params := url.Values{}
	if skip > 0 {
		params.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	resp, err := c.do(ctx, "GET", "/blog/posts", params, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var posts []domain.BlogPost
	if err := decode(resp.Body, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) BlogPost(ctx context.Context, slug string) (*domain.BlogPost, error) {
	resp, err := c.do(ctx, "GET", fmt.Sprintf("/blog/posts/%s", slug), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var post domain.BlogPost
	if err := decode(resp.Body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
