package domain

import "encoding/json"

// Destination is a bookable region of France shown on the home page.
type Destination struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description,omitempty"`
	Image         string `json:"image,omitempty"`
	RegionType    string `json:"region_type,omitempty"`
	Featured      bool   `json:"featured,omitempty"`
	PropertyCount int    `json:"property_count,omitempty"`
}

func (d *Destination) UnmarshalJSON(data []byte) error {
	type alias Destination
	wire := struct {
		Id       json.RawMessage `json:"id"`
		ImageURL string          `json:"image_url"`
		*alias
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d.Id = rawId(wire.Id)
	if d.Image == "" {
		d.Image = wire.ImageURL
	}
	return nil
}
