package repository

import (
	"sync"

	"github.com/shelfwise/retail-api/internal/domain"
)

// SupplierRepository holds all suppliers keyed by id
type SupplierRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.Supplier
	nextID int
}

// NewSupplierRepository creates an empty supplier repository
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{
		byID:   make(map[int]domain.Supplier),
		nextID: 1,
	}
}

// List returns all suppliers in unspecified order
func (r *SupplierRepository) List() []domain.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suppliers := make([]domain.Supplier, 0, len(r.byID))
	for _, s := range r.byID {
		suppliers = append(suppliers, s)
	}
	return suppliers
}

// Get returns the supplier with the given id, if it exists
func (r *SupplierRepository) Get(id int) (domain.Supplier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	return s, ok
}

// Create assigns the next id and stores the supplier
func (r *SupplierRepository) Create(supplier domain.Supplier) domain.Supplier {
	r.mu.Lock()
	defer r.mu.Unlock()

	supplier.ID = r.nextID
	r.nextID++
	r.byID[supplier.ID] = supplier
	return supplier
}

// Update applies mutate to the stored supplier under the write lock
func (r *SupplierRepository) Update(id int, mutate func(*domain.Supplier)) (domain.Supplier, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return domain.Supplier{}, false
	}
	mutate(&s)
	s.ID = id
	r.byID[id] = s
	return s, true
}

// Delete removes the supplier and reports whether it existed
func (r *SupplierRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
