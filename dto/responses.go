package dto

import (
	"booking-backend/domain"
	"booking-backend/utils"
)

type PropertyResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	MaxGuests         int     `json:"maxGuests"`
	BasePricePerNight float64 `json:"basePricePerNight"`
}

type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID         string           `json:"id"`
	Property   PropertyResponse `json:"property"`
	Guest      UserResponse     `json:"guest"`
	StartDate  string           `json:"startDate"`
	EndDate    string           `json:"endDate"`
	Nights     int              `json:"nights"`
	GuestCount int              `json:"guestCount"`
	TotalPrice float64          `json:"totalPrice"`
	Status     string           `json:"status"`
}

func NewPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:                p.ID(),
		Name:              p.Name(),
		Description:       p.Description(),
		MaxGuests:         p.MaxGuests(),
		BasePricePerNight: p.BasePricePerNight(),
	}
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID(), Name: u.Name()}
}

func NewBookingResponse(b *domain.Booking) BookingResponse {
	r := b.DateRange()
	return BookingResponse{
		ID:         b.ID(),
		Property:   NewPropertyResponse(b.Property()),
		Guest:      NewUserResponse(b.Guest()),
		StartDate:  utils.FormatDate(r.StartDate()),
		EndDate:    utils.FormatDate(r.EndDate()),
		Nights:     r.Nights(),
		GuestCount: b.GuestCount(),
		TotalPrice: b.TotalPrice(),
		Status:     string(b.Status()),
	}
}

func NewBookingResponses(bookings []*domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingResponse(b))
	}
	return out
}
