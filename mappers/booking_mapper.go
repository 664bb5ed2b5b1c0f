package mappers

import (
	"time"

	"gorm.io/datatypes"

	"booking-backend/domain"
	"booking-backend/models"
)

// BookingToDomain rebuilds a stored booking. The stored total price and
// status are kept as they are; the price is not recomputed. The foreign keys
// must name the nested property and guest.
func BookingToDomain(record models.Booking) (*domain.Booking, error) {
	if err := checkRecord(record, bookingMessages); err != nil {
		return nil, err
	}
	if record.PropertyID != record.Property.ID {
		return nil, domain.NewValidationError("A propriedade da reserva não corresponde ao registro")
	}
	if record.GuestID != record.Guest.ID {
		return nil, domain.NewValidationError("O hóspede da reserva não corresponde ao registro")
	}

	property, err := PropertyToDomain(*record.Property)
	if err != nil {
		return nil, err
	}
	guest, err := UserToDomain(*record.Guest)
	if err != nil {
		return nil, err
	}
	dateRange, err := domain.NewDateRange(time.Time(record.StartDate), time.Time(record.EndDate))
	if err != nil {
		return nil, err
	}

	return domain.RestoreBooking(
		record.ID,
		property,
		guest,
		dateRange,
		record.GuestCount,
		record.TotalPrice,
		domain.BookingStatus(record.Status),
	)
}

func BookingToPersistence(booking *domain.Booking) models.Booking {
	property := PropertyToPersistence(booking.Property())
	guest := UserToPersistence(booking.Guest())

	return models.Booking{
		ID:         booking.ID(),
		PropertyID: property.ID,
		Property:   &property,
		GuestID:    guest.ID,
		Guest:      &guest,
		StartDate:  datatypes.Date(booking.DateRange().StartDate()),
		EndDate:    datatypes.Date(booking.DateRange().EndDate()),
		GuestCount: booking.GuestCount(),
		TotalPrice: booking.TotalPrice(),
		Status:     string(booking.Status()),
	}
}
