package repository

import (
	"sync"
	"time"

	"github.com/shelfwise/retail-api/internal/domain"
)

// OrderRepository holds all purchase orders keyed by id
type OrderRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.Order
	nextID int
}

// NewOrderRepository creates an empty order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID:   make(map[int]domain.Order),
		nextID: 1,
	}
}

// List returns all orders in unspecified order
func (r *OrderRepository) List() []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.byID))
	for _, o := range r.byID {
		orders = append(orders, o)
	}
	return orders
}

// Get returns the order with the given id, if it exists
func (r *OrderRepository) Get(id int) (domain.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	return o, ok
}

// Create assigns the next id, stamps the order date and stores the order
func (r *OrderRepository) Create(order domain.Order) domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	order.OrderDate = time.Now()
	r.byID[order.ID] = order
	return order
}

// Update applies mutate under the write lock. The order date is immutable:
// whatever mutate writes to it is discarded.
func (r *OrderRepository) Update(id int, mutate func(*domain.Order)) (domain.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok {
		return domain.Order{}, false
	}
	orderDate := o.OrderDate
	mutate(&o)
	o.ID = id
	o.OrderDate = orderDate
	r.byID[id] = o
	return o, true
}

// Delete removes the order and reports whether it existed
func (r *OrderRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
