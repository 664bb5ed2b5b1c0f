package repositories

import (
	"context"
	"log"
	"time"

	"github.com/karlseguin/ccache/v3"

	"booking-backend/domain"
)

// cachedPropertyRepository keeps recently read properties in a local ccache.
// Properties are immutable once built, so cached pointers can be shared.
type cachedPropertyRepository struct {
	next  PropertyRepository
	cache *ccache.Cache[*domain.Property]
	ttl   time.Duration
}

// NewCachedPropertyRepository wraps next with a read-through cache.
// Misses are not cached so a property created elsewhere shows up at once.
func NewCachedPropertyRepository(next PropertyRepository, maxSize int64, ttl time.Duration) PropertyRepository {
	cache := ccache.New(ccache.Configure[*domain.Property]().MaxSize(maxSize))
	log.Printf("Property cache initialized (size=%d, ttl=%s)", maxSize, ttl)

	return &cachedPropertyRepository{next: next, cache: cache, ttl: ttl}
}

func (r *cachedPropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	if item := r.cache.Get(id); item != nil && !item.Expired() {
		return item.Value(), nil
	}

	property, err := r.next.FindByID(ctx, id)
	if err != nil || property == nil {
		return property, err
	}
	r.cache.Set(id, property, r.ttl)
	return property, nil
}

func (r *cachedPropertyRepository) Save(ctx context.Context, property *domain.Property) error {
	if err := r.next.Save(ctx, property); err != nil {
		r.cache.Delete(property.ID())
		return err
	}
	r.cache.Set(property.ID(), property, r.ttl)
	return nil
}
