package availability

import (
	"context"
	"errors"
	"time"

	"pass-finder/core/availability"

	"go.uber.org/zap"
)

// ErrNotFound is returned for an unknown location id.
var ErrNotFound = errors.New("location not found")

// Store serves unified records, usually from a short-TTL cache.
type Store interface {
	GetUnifiedAvailability(ctx context.Context) ([]availability.Record, error)
	Refresh(ctx context.Context) ([]availability.Record, error)
	TTL() time.Duration
}

// Service answers availability queries.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new availability service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// List returns the records of all locations in registry order.
func (s *Service) List(ctx context.Context) ([]availability.Record, error) {
	return s.store.GetUnifiedAvailability(ctx)
}

// Get returns the record of one location.
func (s *Service) Get(ctx context.Context, id string) (*availability.Record, error) {
	records, err := s.store.GetUnifiedAvailability(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, ErrNotFound
}

// Refresh discards the cached result and runs a new aggregation cycle.
func (s *Service) Refresh(ctx context.Context) ([]availability.Record, error) {
	return s.store.Refresh(ctx)
}

// MaxAge returns how long clients and shared caches may keep a response.
func (s *Service) MaxAge() time.Duration {
	return s.store.TTL()
}
