package models

import (
	"gorm.io/datatypes"
)

// Booking is the stored form of a booking. Property and Guest carry the full
// sub-records so a booking can be rebuilt from a single preloaded row.
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id" validate:"required"`

	PropertyID string    `gorm:"column:property_id;size:36;index;not null" json:"propertyId"`
	Property   *Property `gorm:"foreignKey:PropertyID;references:ID" json:"property" validate:"required"`
	GuestID    string    `gorm:"column:guest_id;size:36;index;not null" json:"guestId"`
	Guest      *User     `gorm:"foreignKey:GuestID;references:ID" json:"guest" validate:"required"`

	StartDate  datatypes.Date `gorm:"column:start_date;not null" json:"startDate" validate:"required"`
	EndDate    datatypes.Date `gorm:"column:end_date;not null" json:"endDate" validate:"required"`
	GuestCount int            `gorm:"column:guest_count" json:"guestCount" validate:"required"`
	TotalPrice float64        `gorm:"column:total_price" json:"totalPrice" validate:"required"`
	Status     string         `gorm:"column:status;size:16;index" json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

func (Booking) TableName() string {
	return "bookings"
}
