package events

import (
	"context"
	"time"

	"booking-backend/domain"
)

type EventType string

const (
	BookingCreated   EventType = "booking.created"
	BookingConfirmed EventType = "booking.confirmed"
	BookingCancelled EventType = "booking.cancelled"
)

// BookingEvent is the message sent to other services when a booking changes.
type BookingEvent struct {
	Type       EventType `json:"type"`
	BookingID  string    `json:"booking_id"`
	PropertyID string    `json:"property_id"`
	GuestID    string    `json:"guest_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	GuestCount int       `json:"guest_count"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingEvent(t EventType, b *domain.Booking) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID(),
		PropertyID: b.Property().ID(),
		GuestID:    b.Guest().ID(),
		StartDate:  b.DateRange().StartDate().Format("2006-01-02"),
		EndDate:    b.DateRange().EndDate().Format("2006-01-02"),
		GuestCount: b.GuestCount(),
		TotalPrice: b.TotalPrice(),
		Status:     string(b.Status()),
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, BookingEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
