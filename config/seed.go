package config

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"booking-backend/models"
)

// SeedDatabase loads the demo property and guest used by local setups and the
// HTTP tests. Existing rows are left alone.
func SeedDatabase(db *gorm.DB) error {
	// ---------------- Users ----------------
	var userCount int64
	if err := db.Model(&models.User{}).Where("id = ?", "1").Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to check demo user: %w", err)
	}
	if userCount == 0 {
		if err := db.Create(&models.User{ID: "1", Name: "John Doe"}).Error; err != nil {
			return fmt.Errorf("failed to seed demo user: %w", err)
		}
		log.Println("Demo user seeded")
	}

	// ---------------- Properties ----------------
	var propertyCount int64
	if err := db.Model(&models.Property{}).Where("id = ?", "1").Count(&propertyCount).Error; err != nil {
		return fmt.Errorf("failed to check demo property: %w", err)
	}
	if propertyCount == 0 {
		property := models.Property{
			ID:                "1",
			Name:              "Apartamento",
			Description:       "Apartamento de teste",
			MaxGuests:         4,
			BasePricePerNight: 100,
		}
		if err := db.Omit("Bookings").Create(&property).Error; err != nil {
			return fmt.Errorf("failed to seed demo property: %w", err)
		}
		log.Println("Demo property seeded")
	}

	return nil
}
