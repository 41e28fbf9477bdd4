package domain

import (
	"encoding/json"
	"time"
)

// BlogPost teasers appear on the home page; the full body renders on its
// own page after markdown processing.
type BlogPost struct {
	Id          string       `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Excerpt     string       `json:"excerpt,omitempty"`
	Content     string       `json:"content,omitempty"`
	Image       string       `json:"image,omitempty"`
	Author      *UserProfile `json:"author,omitempty"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
}

func (b *BlogPost) UnmarshalJSON(data []byte) error {
	type alias BlogPost
	wire := struct {
		Id            json.RawMessage `json:"id"`
		FeaturedImage string          `json:"featured_image"`
		*alias
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	b.Id = rawId(wire.Id)
	if b.Image == "" {
		b.Image = wire.FeaturedImage
	}
	return nil
}
