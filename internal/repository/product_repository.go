package repository

import (
	"sync"

	"github.com/shelfwise/retail-api/internal/domain"
)

// ProductRepository holds all products keyed by id
type ProductRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.Product
	nextID int
}

// NewProductRepository creates an empty product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byID:   make(map[int]domain.Product),
		nextID: 1,
	}
}

// List returns all products in unspecified order
func (r *ProductRepository) List() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		products = append(products, p)
	}
	return products
}

// Get returns the product with the given id, if it exists
func (r *ProductRepository) Get(id int) (domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	return p, ok
}

// GetBySKU returns the product with the given SKU via a linear scan
func (r *ProductRepository) GetBySKU(sku string) (domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byID {
		if p.SKU == sku {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Create assigns the next id and stores the product.
// Fails with ErrSKUTaken when another product already carries the SKU;
// the id counter is not consumed on failure.
func (r *ProductRepository) Create(product domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.SKU == product.SKU {
			return domain.Product{}, ErrSKUTaken
		}
	}

	product.ID = r.nextID
	r.nextID++
	r.byID[product.ID] = product
	return product, nil
}

// Update applies mutate to the stored product under the write lock.
// The change is all-or-nothing; the id is preserved.
func (r *ProductRepository) Update(id int, mutate func(*domain.Product)) (domain.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	mutate(&p)
	p.ID = id
	r.byID[id] = p
	return p, true
}

// Delete removes the product and reports whether it existed
func (r *ProductRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
