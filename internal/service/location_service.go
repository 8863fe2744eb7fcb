package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
)

// LocationService handles business logic for warehouses and stores
type LocationService struct {
	locations *repository.LocationRepository
	logger    *zap.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(locations *repository.LocationRepository, logger *zap.Logger) *LocationService {
	return &LocationService{locations: locations, logger: logger}
}

// List returns all locations ordered by id
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	locations := s.locations.List()
	sort.Slice(locations, func(i, j int) bool { return locations[i].ID < locations[j].ID })
	return locations, nil
}

// Get retrieves a location by id
func (s *LocationService) Get(ctx context.Context, id int) (*domain.Location, error) {
	l, ok := s.locations.Get(id)
	if !ok {
		return nil, ErrLocationNotFound
	}
	return &l, nil
}

// Create creates a new location
func (s *LocationService) Create(ctx context.Context, req *domain.CreateLocationRequest) (*domain.Location, error) {
	l := s.locations.Create(domain.Location{
		Name:    req.Name,
		Type:    domain.LocationType(req.Type),
		Address: req.Address,
	})
	s.logger.Info("location created", zap.Int("id", l.ID), zap.String("type", req.Type))
	return &l, nil
}

// Update applies a partial update to a location
func (s *LocationService) Update(ctx context.Context, id int, req *domain.UpdateLocationRequest) (*domain.Location, error) {
	l, ok := s.locations.Update(id, func(l *domain.Location) {
		if req.Name != nil {
			l.Name = *req.Name
		}
		if req.Type != nil {
			l.Type = domain.LocationType(*req.Type)
		}
		if req.Address != nil {
			l.Address = *req.Address
		}
	})
	if !ok {
		return nil, ErrLocationNotFound
	}
	return &l, nil
}

// Delete removes a location
func (s *LocationService) Delete(ctx context.Context, id int) error {
	if !s.locations.Delete(id) {
		return ErrLocationNotFound
	}
	s.logger.Info("location deleted", zap.Int("id", id))
	return nil
}
