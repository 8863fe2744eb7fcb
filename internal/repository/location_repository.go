package repository

import (
	"sync"

	"github.com/shelfwise/retail-api/internal/domain"
)

// LocationRepository holds all locations keyed by id
type LocationRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.Location
	nextID int
}

// NewLocationRepository creates an empty location repository
func NewLocationRepository() *LocationRepository {
	return &LocationRepository{
		byID:   make(map[int]domain.Location),
		nextID: 1,
	}
}

// List returns all locations in unspecified order
func (r *LocationRepository) List() []domain.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locations := make([]domain.Location, 0, len(r.byID))
	for _, l := range r.byID {
		locations = append(locations, l)
	}
	return locations
}

// Get returns the location with the given id, if it exists
func (r *LocationRepository) Get(id int) (domain.Location, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	return l, ok
}

// Create assigns the next id and stores the location
func (r *LocationRepository) Create(location domain.Location) domain.Location {
	r.mu.Lock()
	defer r.mu.Unlock()

	location.ID = r.nextID
	r.nextID++
	r.byID[location.ID] = location
	return location
}

// Update applies mutate to the stored location under the write lock
func (r *LocationRepository) Update(id int, mutate func(*domain.Location)) (domain.Location, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byID[id]
	if !ok {
		return domain.Location{}, false
	}
	mutate(&l)
	l.ID = id
	r.byID[id] = l
	return l, true
}

// Delete removes the location and reports whether it existed
func (r *LocationRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
