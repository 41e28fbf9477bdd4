package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/domain"
)

// ListOptions paginate and filter the property listing endpoint.
type ListOptions struct {
	Skip    int
	Limit   int
	Filters domain.SearchFilters
}

func (o ListOptions) query() url.Values {
	params := o.Filters.Query()
	// dates and guests only apply to /search
	params.Del("check_in")
	params.Del("check_out")
	params.Del("guests")
	if o.Skip > 0 {
		params.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	return params
}

// === Property Methods ===

func (c *Client) Properties(ctx context.Context, opts ListOptions) ([]domain.Property, error) {
	resp, err := c.do(ctx, "GET", "/properties", opts.query(), nil)
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

// SearchProperties runs the filtered availability search. Sentinel
// filter values are already stripped by SearchFilters.Query.
func (c *Client) SearchProperties(ctx context.Context, filters domain.SearchFilters) (*api.SearchResponse, error) {
	resp, err := c.do(ctx, "GET", "/properties/search", filters.Query(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result api.SearchResponse
	if err := decode(resp.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Property(ctx context.Context, id string) (*domain.Property, error) {
	resp, err := c.do(ctx, "GET", fmt.Sprintf("/properties/%s", id), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var property domain.Property
	if err := decode(resp.Body, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// Owner-side management calls. No marketing page drives these; the
// account area of the owner portal does.

func (c *Client) CreateProperty(ctx context.Context, req api.PropertyRequest) (*domain.Property, error) {
	resp, err := c.do(ctx, "POST", "/properties", nil, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var property domain.Property
	if err := decode(resp.Body, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, req api.PropertyRequest) (*domain.Property, error) {
	resp, err := c.do(ctx, "PUT", fmt.Sprintf("/properties/%s", id), nil, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var property domain.Property
	if err := decode(resp.Body, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	resp, err := c.do(ctx, "DELETE", fmt.Sprintf("/properties/%s", id), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}
