package mappers

import (
	"booking-backend/domain"
	"booking-backend/models"
)

func PropertyToDomain(record models.Property) (*domain.Property, error) {
	if err := checkRecord(record, propertyMessages); err != nil {
		return nil, err
	}
	return domain.NewProperty(
		record.ID,
		record.Name,
		record.Description,
		record.MaxGuests,
		record.BasePricePerNight,
	)
}

func PropertyToPersistence(property *domain.Property) models.Property {
	return models.Property{
		ID:                property.ID(),
		Name:              property.Name(),
		Description:       property.Description(),
		MaxGuests:         property.MaxGuests(),
		BasePricePerNight: property.BasePricePerNight(),
		Bookings:          []models.Booking{},
	}
}
