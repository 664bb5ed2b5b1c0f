package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"booking-backend/domain"
	"booking-backend/dto"
	"booking-backend/events"
	"booking-backend/repositories"
	"booking-backend/utils"
)

const (
	msgPropertyNotFound = "Propriedade não encontrada"
	msgGuestNotFound    = "Hóspede não encontrado"
	msgBookingNotFound  = "Reserva não encontrada"
	msgInvalidStartDate = "Data de início inválida"
	msgInvalidEndDate   = "Data de término inválida"
)

type BookingService struct {
	Bookings   repositories.BookingRepository
	Properties repositories.PropertyRepository
	Users      repositories.UserRepository
	Events     events.Publisher
}

func NewBookingService(
	bookings repositories.BookingRepository,
	properties repositories.PropertyRepository,
	users repositories.UserRepository,
	publisher events.Publisher,
) *BookingService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &BookingService{
		Bookings:   bookings,
		Properties: properties,
		Users:      users,
		Events:     publisher,
	}
}

// CreateBooking validates the request, prices it and stores it as PENDING.
// It is rejected up front when a confirmed booking already holds any of the
// requested nights.
func (s *BookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, error) {
	start, _, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, domain.NewValidationError(msgInvalidStartDate)
	}
	end, _, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, domain.NewValidationError(msgInvalidEndDate)
	}
	dateRange, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	property, err := s.Properties.FindByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.NewNotFoundError(msgPropertyNotFound)
	}

	guest, err := s.Users.FindByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, domain.NewNotFoundError(msgGuestNotFound)
	}

	booking, err := domain.NewBooking(uuid.NewString(), property, guest, dateRange, req.GuestCount)
	if err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.BookingCreated, booking)
	return booking, nil
}

// FindBookingByID returns nil, nil when the booking does not exist.
func (s *BookingService) FindBookingByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.Bookings.FindByID(ctx, id)
}

// ConfirmBooking moves a pending booking to CONFIRMED. The repository repeats
// the availability check atomically with the write.
func (s *BookingService) ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := booking.Confirm(); err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.BookingConfirmed, booking)
	return booking, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := booking.Cancel(); err != nil {
		return nil, err
	}
	if err := s.Bookings.Save(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.BookingCancelled, booking)
	return booking, nil
}

// ListPropertyBookings returns the bookings of a property ordered by start date.
func (s *BookingService) ListPropertyBookings(ctx context.Context, propertyID string) ([]*domain.Booking, error) {
	property, err := s.Properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.NewNotFoundError(msgPropertyNotFound)
	}
	return s.Bookings.FindByProperty(ctx, propertyID)
}

func (s *BookingService) load(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.Bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.NewNotFoundError(msgBookingNotFound)
	}
	return booking, nil
}

func (s *BookingService) ensureAvailable(ctx context.Context, booking *domain.Booking) error {
	existing, err := s.Bookings.FindByProperty(ctx, booking.Property().ID())
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID() != booking.ID() && other.Blocks(booking.DateRange()) {
			return domain.ErrSlotUnavailable
		}
	}
	return nil
}

// publish never fails the request: the booking is already stored.
func (s *BookingService) publish(ctx context.Context, t events.EventType, booking *domain.Booking) {
	if err := s.Events.Publish(ctx, events.NewBookingEvent(t, booking)); err != nil {
		log.Printf("⚠️  failed to publish %s for booking %s: %v", t, booking.ID(), err)
	}
}
