package domain

import (
	"bytes"
	"encoding/json"
)

type PropertyImage struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

type PropertyLocation struct {
	Address    string   `json:"address,omitempty"`
	City       string   `json:"city,omitempty"`
	Region     string   `json:"region,omitempty"`
	PostalCode string   `json:"postal_code,omitempty"`
	Country    string   `json:"country,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// Property is the canonical listing record. Backend payloads carry an
// images array plus a nested location; older/bundled payloads carry a
// flat image and region. Both shapes normalize to this one at decode
// time, so templates never branch on provenance.
type Property struct {
	Id            string           `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug,omitempty"`
	Description   string           `json:"description,omitempty"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     int              `json:"bathrooms,omitempty"`
	MaxGuests     int              `json:"max_guests,omitempty"`
	Type          string           `json:"property_type,omitempty"`
	Region        string           `json:"region,omitempty"`
	Location      PropertyLocation `json:"location,omitempty"`
	PricePerNight float64          `json:"price_per_night,omitempty"`
	Image         string           `json:"image,omitempty"`
	Images        []PropertyImage  `json:"images,omitempty"`
	Amenities     []string         `json:"amenities,omitempty"`
	AverageRating float64          `json:"average_rating,omitempty"`
	ReviewCount   int              `json:"review_count,omitempty"`
}

func (p *Property) UnmarshalJSON(data []byte) error {
	type alias Property
	wire := struct {
		Id       json.RawMessage `json:"id"`
		FlatType string          `json:"type"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	p.Id = rawId(wire.Id)
	if p.Type == "" {
		p.Type = wire.FlatType
	}
	p.normalize()
	return nil
}

// rawId accepts both uuid-string and numeric ids.
func rawId(raw json.RawMessage) string {
	return string(bytes.Trim(bytes.TrimSpace(raw), `"`))
}

// normalize resolves the canonical display image and region from
// whichever fields the payload carried.
func (p *Property) normalize() {
	if p.Image == "" {
		for _, img := range p.Images {
			if img.IsPrimary {
				p.Image = img.URL
				break
			}
		}
	}
	if p.Image == "" && len(p.Images) > 0 {
		p.Image = p.Images[0].URL
	}
	if p.Region == "" {
		p.Region = p.Location.Region
	}
}
