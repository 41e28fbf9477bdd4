package domain

import "time"

type Review struct {
	Id         string       `json:"id"`
	PropertyId string       `json:"property_id"`
	Rating     int          `json:"rating"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	UserId     string       `json:"user_id,omitempty"`
	User       *UserProfile `json:"user,omitempty"`
	CreatedAt  *time.Time   `json:"created_at,omitempty"`
}
