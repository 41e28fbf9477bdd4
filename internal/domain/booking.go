package domain

import "time"

// Booking statuses as the backend reports them.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

type Booking struct {
	Id              string     `json:"id"`
	PropertyId      string     `json:"property_id"`
	CheckIn         string     `json:"check_in"`
	CheckOut        string     `json:"check_out"`
	Guests          int        `json:"guests"`
	SpecialRequests string     `json:"special_requests,omitempty"`
	UserId          string     `json:"user_id,omitempty"`
	TotalPrice      float64    `json:"total_price,omitempty"`
	Status          string     `json:"status,omitempty"`
	PaymentStatus   string     `json:"payment_status,omitempty"`
	Property        *Property  `json:"property,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

func (b Booking) Cancellable() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

func (b Booking) AwaitingPayment() bool {
	return b.Status != BookingCancelled && b.PaymentStatus == "pending"
}
