package repositories

import (
	"context"

	"booking-backend/domain"
)

// UserRepository is what the services need from user storage.
// FindByID returns nil, nil when the user does not exist.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}

// PropertyRepository is what the services need from property storage.
// FindByID returns nil, nil when the property does not exist.
type PropertyRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	Save(ctx context.Context, property *domain.Property) error
}

// BookingRepository stores bookings.
//
// Save creates or updates by id. Saving a CONFIRMED booking must fail with
// domain.ErrSlotUnavailable when another confirmed booking of the same
// property overlaps it; implementations do that check atomically with the
// write so two concurrent confirmations cannot both succeed.
type BookingRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByProperty(ctx context.Context, propertyID string) ([]*domain.Booking, error)
	Save(ctx context.Context, booking *domain.Booking) error
}
