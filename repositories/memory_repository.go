package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"booking-backend/domain"
	"booking-backend/mappers"
	"booking-backend/models"
)

// The in-memory repositories keep persistence records, not entities, so every
// read goes through the same mappers as the gorm implementations.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository(seed ...*domain.User) *MemoryUserRepository {
	r := &MemoryUserRepository{users: make(map[string]models.User)}
	for _, u := range seed {
		r.users[u.ID()] = mappers.UserToPersistence(u)
	}
	return r
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	record, ok := r.users[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return mappers.UserToDomain(record)
}

func (r *MemoryUserRepository) Save(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID()] = mappers.UserToPersistence(user)
	return nil
}

type MemoryPropertyRepository struct {
	mu         sync.RWMutex
	properties map[string]models.Property
}

func NewMemoryPropertyRepository(seed ...*domain.Property) *MemoryPropertyRepository {
	r := &MemoryPropertyRepository{properties: make(map[string]models.Property)}
	for _, p := range seed {
		r.properties[p.ID()] = mappers.PropertyToPersistence(p)
	}
	return r
}

func (r *MemoryPropertyRepository) FindByID(_ context.Context, id string) (*domain.Property, error) {
	r.mu.RLock()
	record, ok := r.properties[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return mappers.PropertyToDomain(record)
}

func (r *MemoryPropertyRepository) Save(_ context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties[property.ID()] = mappers.PropertyToPersistence(property)
	return nil
}

type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
	order    []string
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepository) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	record, ok := r.bookings[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return mappers.BookingToDomain(record)
}

func (r *MemoryBookingRepository) FindByProperty(_ context.Context, propertyID string) ([]*domain.Booking, error) {
	r.mu.RLock()
	records := make([]models.Booking, 0)
	for _, id := range r.order {
		if rec := r.bookings[id]; rec.PropertyID == propertyID {
			records = append(records, rec)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(records, func(i, j int) bool {
		return time.Time(records[i].StartDate).Before(time.Time(records[j].StartDate))
	})

	out := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		b, err := mappers.BookingToDomain(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Save holds the write lock across the status check, the overlap check and
// the write, which is the in-memory equivalent of the row locks taken by the
// gorm implementation.
func (r *MemoryBookingRepository) Save(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, exists := r.bookings[booking.ID()]; exists {
		if err := domain.CheckTransition(domain.BookingStatus(stored.Status), booking.Status()); err != nil {
			return err
		}
	}

	if booking.Status() == domain.BookingConfirmed {
		for _, rec := range r.bookings {
			if rec.ID == booking.ID() || rec.PropertyID != booking.Property().ID() {
				continue
			}
			if rec.Status != string(domain.BookingConfirmed) {
				continue
			}
			other, err := mappers.BookingToDomain(rec)
			if err != nil {
				return err
			}
			if other.Blocks(booking.DateRange()) {
				return domain.ErrSlotUnavailable
			}
		}
	}

	if _, exists := r.bookings[booking.ID()]; !exists {
		r.order = append(r.order, booking.ID())
	}
	r.bookings[booking.ID()] = mappers.BookingToPersistence(booking)
	return nil
}
