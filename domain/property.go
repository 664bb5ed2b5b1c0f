package domain

import (
	"math"
	"strings"
)

// Property is a rentable unit with a fixed capacity and nightly rate.
type Property struct {
	id                string
	name              string
	description       string
	maxGuests         int
	basePricePerNight float64
}

func NewProperty(id, name, description string, maxGuests int, basePricePerNight float64) (*Property, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("O nome é obrigatório")
	}
	if maxGuests <= 0 {
		return nil, NewValidationError("A capacidade máxima deve ser maior que zero")
	}
	if !(basePricePerNight > 0) || math.IsInf(basePricePerNight, 0) {
		return nil, NewValidationError("O preço base por noite é obrigatório")
	}

	return &Property{
		id:                id,
		name:              name,
		description:       description,
		maxGuests:         maxGuests,
		basePricePerNight: basePricePerNight,
	}, nil
}

func (p *Property) ID() string { return p.id }

func (p *Property) Name() string { return p.name }

func (p *Property) Description() string { return p.description }

func (p *Property) MaxGuests() int { return p.maxGuests }

func (p *Property) BasePricePerNight() float64 { return p.basePricePerNight }

// PriceFor returns the total for staying the whole range.
func (p *Property) PriceFor(r DateRange) float64 {
	return float64(r.Nights()) * p.basePricePerNight
}
