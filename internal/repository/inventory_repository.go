package repository

import (
	"sync"
	"time"

	"github.com/shelfwise/retail-api/internal/domain"
)

// InventoryRepository holds all inventory rows keyed by id
type InventoryRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.Inventory
	nextID int
}

// NewInventoryRepository creates an empty inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		byID:   make(map[int]domain.Inventory),
		nextID: 1,
	}
}

// List returns all inventory rows in unspecified order
func (r *InventoryRepository) List() []domain.Inventory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Inventory, 0, len(r.byID))
	for _, item := range r.byID {
		items = append(items, item)
	}
	return items
}

// Get returns the inventory row with the given id, if it exists
func (r *InventoryRepository) Get(id int) (domain.Inventory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok
}

// GetByProductAndLocation returns the row for a (product, location) pair
func (r *InventoryRepository) GetByProductAndLocation(productID, locationID int) (domain.Inventory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byID {
		if item.ProductID == productID && item.LocationID == locationID {
			return item, true
		}
	}
	return domain.Inventory{}, false
}

// ListByLocation returns all rows for one location
func (r *InventoryRepository) ListByLocation(locationID int) []domain.Inventory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Inventory, 0)
	for _, item := range r.byID {
		if item.LocationID == locationID {
			items = append(items, item)
		}
	}
	return items
}

// Create assigns the next id, stamps UpdatedAt and stores the row
func (r *InventoryRepository) Create(item domain.Inventory) domain.Inventory {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	item.UpdatedAt = time.Now()
	r.byID[item.ID] = item
	return item
}

// Update applies mutate under the write lock and refreshes UpdatedAt.
// UpdatedAt is stamped on every mutation regardless of which fields changed.
func (r *InventoryRepository) Update(id int, mutate func(*domain.Inventory)) (domain.Inventory, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return domain.Inventory{}, false
	}
	mutate(&item)
	item.ID = id
	item.UpdatedAt = time.Now()
	r.byID[id] = item
	return item, true
}

// Delete removes the row and reports whether it existed
func (r *InventoryRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
