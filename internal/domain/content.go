package domain

import (
	"encoding/json"
	"time"
)

// InspirationCategory is a curated browse entry point ("Perfect for
// couples", "Large groups 12+", ...).
type InspirationCategory struct {
	Id            string `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Description   string `json:"description,omitempty"`
	Image         string `json:"image,omitempty"`
	PropertyCount int    `json:"property_count,omitempty"`
}

func (c *InspirationCategory) UnmarshalJSON(data []byte) error {
	type alias InspirationCategory
	wire := struct {
		Id       json.RawMessage `json:"id"`
		ImageURL string          `json:"image_url"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.Id = rawId(wire.Id)
	if c.Image == "" {
		c.Image = wire.ImageURL
	}
	return nil
}

type SpecialOffer struct {
	Id                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	DiscountPercentage float64   `json:"discount_percentage"`
	ValidFrom          time.Time `json:"valid_from"`
	ValidUntil         time.Time `json:"valid_until"`
	PropertyIds        []string  `json:"property_ids,omitempty"`
	Active             bool      `json:"active"`
}

// PressLogo entries are static marketing content, bundled only.
type PressLogo struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
