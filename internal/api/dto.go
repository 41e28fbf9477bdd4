package api

import "github.com/villafrance/frontend/internal/domain"

// Request DTOs shared by the apiclient and the form handlers

type CreateBookingRequest struct {
	PropertyId      string `json:"property_id" validate:"required"`
	CheckIn         string `json:"check_in" validate:"required"`
	CheckOut        string `json:"check_out" validate:"required"`
	Guests          int    `json:"guests" validate:"required,min=1"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type UpdateBookingRequest struct {
	CheckIn         *string `json:"check_in,omitempty"`
	CheckOut        *string `json:"check_out,omitempty"`
	Guests          *int    `json:"guests,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type CreateReviewRequest struct {
	PropertyId string `json:"property_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// PropertyRequest covers owner-side create and update calls.
type PropertyRequest struct {
	Name          string                  `json:"name" validate:"required"`
	Description   string                  `json:"description" validate:"required"`
	Bedrooms      int                     `json:"bedrooms" validate:"required,min=1"`
	Bathrooms     int                     `json:"bathrooms" validate:"required,min=1"`
	MaxGuests     int                     `json:"max_guests" validate:"required,min=1"`
	PropertyType  string                  `json:"property_type" validate:"required"`
	Location      domain.PropertyLocation `json:"location"`
	PricePerNight float64                 `json:"price_per_night" validate:"required"`
	Images        []domain.PropertyImage  `json:"images,omitempty"`
	Amenities     []string                `json:"amenities,omitempty"`
}

// SearchResponse wraps filtered property search results.
type SearchResponse struct {
	Properties []domain.Property `json:"properties"`
	TotalCount int               `json:"total_count"`
}
