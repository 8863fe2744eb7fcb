package repository

import (
	"sync"

	"github.com/shelfwise/retail-api/internal/domain"
)

// OrderItemRepository holds all order lines keyed by id
type OrderItemRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.OrderItem
	nextID int
}

// NewOrderItemRepository creates an empty order item repository
func NewOrderItemRepository() *OrderItemRepository {
	return &OrderItemRepository{
		byID:   make(map[int]domain.OrderItem),
		nextID: 1,
	}
}

// ListByOrder returns all lines belonging to one order
func (r *OrderItemRepository) ListByOrder(orderID int) []domain.OrderItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.OrderItem, 0)
	for _, item := range r.byID {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items
}

// Get returns the order item with the given id, if it exists
func (r *OrderItemRepository) Get(id int) (domain.OrderItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok
}

// Create assigns the next id and stores the order item
func (r *OrderItemRepository) Create(item domain.OrderItem) domain.OrderItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.byID[item.ID] = item
	return item
}

// Update applies mutate to the stored item under the write lock
func (r *OrderItemRepository) Update(id int, mutate func(*domain.OrderItem)) (domain.OrderItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return domain.OrderItem{}, false
	}
	mutate(&item)
	item.ID = id
	r.byID[id] = item
	return item, true
}

// Delete removes the item and reports whether it existed
func (r *OrderItemRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
