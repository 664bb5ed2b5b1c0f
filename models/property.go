package models

// Property row. Bookings is only there so gorm knows the relation; it is not
// loaded when a property is read.
type Property struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id" validate:"required"`
	Name              string    `gorm:"size:255;not null" json:"name" validate:"required"`
	Description       string    `gorm:"type:text" json:"description"`
	MaxGuests         int       `gorm:"column:max_guests" json:"maxGuests" validate:"required"`
	BasePricePerNight float64   `gorm:"column:base_price_per_night" json:"basePricePerNight" validate:"required"`
	Bookings          []Booking `gorm:"foreignKey:PropertyID" json:"bookings"`
}

func (Property) TableName() string {
	return "properties"
}
