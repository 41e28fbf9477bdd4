package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/villafrance/frontend/internal/api"
	"github.com/villafrance/frontend/internal/domain"
)

// === Booking Methods ===
// All of these are session-bound; a missing or stale token surfaces as
// ErrSessionExpired from do().

func (c *Client) CreateBooking(ctx context.Context, req api.CreateBookingRequest) (*domain.Booking, error) {
	resp, err := c.do(ctx, "POST", "/bookings", nil, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var booking domain.Booking
	if err := decode(resp.Body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) Bookings(ctx context.Context) ([]domain.Booking, error) {
	resp, err := c.do(ctx, "GET", "/bookings", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var bookings []domain.Booking
	if err := decode(resp.Body, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) Booking(ctx context.Context, id string) (*domain.Booking, error) {
	resp, err := c.do(ctx, "GET", fmt.Sprintf("/bookings/%s", id), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var booking domain.Booking
	if err := decode(resp.Body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, req api.UpdateBookingRequest) (*domain.Booking, error) {
	resp, err := c.do(ctx, "PUT", fmt.Sprintf("/bookings/%s", id), nil, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var booking domain.Booking
	if err := decode(resp.Body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	resp, err := c.do(ctx, "DELETE", fmt.Sprintf("/bookings/%s", id), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}

// ProcessPayment triggers payment processing for a booking.
func (c *Client) ProcessPayment(ctx context.Context, id string) (*domain.Booking, error) {
	resp, err := c.do(ctx, "POST", fmt.Sprintf("/bookings/%s/payment", id), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var booking domain.Booking
	if err := decode(resp.Body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
