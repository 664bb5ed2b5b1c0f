package dto

// Request bodies. Fields are not tagged with binding rules: the entity
// constructors own the validation messages.

type CreatePropertyRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	MaxGuests         int     `json:"maxGuests"`
	BasePricePerNight float64 `json:"basePricePerNight"`
}

type CreateUserRequest struct {
	Name string `json:"name"`
}

// CreateBookingRequest takes dates as "2006-01-02" or RFC3339.
type CreateBookingRequest struct {
	PropertyID string `json:"propertyId"`
	GuestID    string `json:"guestId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	GuestCount int    `json:"guestCount"`
}
