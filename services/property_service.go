package services

import (
	"context"

	"github.com/google/uuid"

	"booking-backend/domain"
	"booking-backend/dto"
	"booking-backend/repositories"
)

type PropertyService struct {
	Properties repositories.PropertyRepository
}

func NewPropertyService(properties repositories.PropertyRepository) *PropertyService {
	return &PropertyService{Properties: properties}
}

func (s *PropertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*domain.Property, error) {
	property, err := domain.NewProperty(
		uuid.NewString(),
		req.Name,
		req.Description,
		req.MaxGuests,
		req.BasePricePerNight,
	)
	if err != nil {
		return nil, err
	}
	if err := s.Properties.Save(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// FindPropertyByID returns nil, nil when the property does not exist.
func (s *PropertyService) FindPropertyByID(ctx context.Context, id string) (*domain.Property, error) {
	return s.Properties.FindByID(ctx, id)
}
