package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"booking-backend/domain"
	"booking-backend/mappers"
	"booking-backend/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var record models.User
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user %s: %w", id, err)
	}
	return mappers.UserToDomain(record)
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	record := mappers.UserToPersistence(user)
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save user %s: %w", record.ID, err)
	}
	return nil
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var record models.Property
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find property %s: %w", id, err)
	}
	return mappers.PropertyToDomain(record)
}

func (r *propertyRepository) Save(ctx context.Context, property *domain.Property) error {
	record := mappers.PropertyToPersistence(property)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save property %s: %w", record.ID, err)
	}
	return nil
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var record models.Booking
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Guest").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find booking %s: %w", id, err)
	}
	return mappers.BookingToDomain(record)
}

func (r *bookingRepository) FindByProperty(ctx context.Context, propertyID string) ([]*domain.Booking, error) {
	var records []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Guest").
		Where("property_id = ?", propertyID).
		Order("start_date ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings of property %s: %w", propertyID, err)
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, record := range records {
		b, err := mappers.BookingToDomain(record)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// Save writes the booking inside a transaction. The stored row is locked
// first and the new status must be reachable from the stored one, so a stale
// copy cannot undo a concurrent cancel. For a confirmed booking the property
// row is locked too (FOR UPDATE; a no-op on sqlite, where writers are already
// serialised) and the overlap check is repeated, so two requests confirming
// the same nights cannot both commit.
func (r *bookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	record := mappers.BookingToPersistence(booking)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored models.Booking
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "status").
			First(&stored, "id = ?", record.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return fmt.Errorf("failed to lock booking %s: %w", record.ID, err)
		default:
			if err := domain.CheckTransition(domain.BookingStatus(stored.Status), booking.Status()); err != nil {
				return err
			}
		}

		if record.Status == string(domain.BookingConfirmed) {
			var property models.Property
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Select("id").
				First(&property, "id = ?", record.PropertyID).Error; err != nil {
				return fmt.Errorf("failed to lock property %s: %w", record.PropertyID, err)
			}

			var overlapping int64
			if err := tx.Model(&models.Booking{}).
				Where("property_id = ? AND id <> ? AND status = ?", record.PropertyID, record.ID, string(domain.BookingConfirmed)).
				Where("start_date < ? AND end_date > ?", record.EndDate, record.StartDate).
				Count(&overlapping).Error; err != nil {
				return fmt.Errorf("failed to check availability: %w", err)
			}
			if overlapping > 0 {
				return domain.ErrSlotUnavailable
			}
		}

		return tx.Omit(clause.Associations).Save(&record).Error
	})
	if err == nil {
		return nil
	}
	return translateBookingSaveError(err, booking.Status(), record.ID)
}
