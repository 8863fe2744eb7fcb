package repository

import (
	"sync"
	"time"

	"github.com/shelfwise/retail-api/internal/domain"
)

// PriceOptimizationRepository holds all price suggestions keyed by id
type PriceOptimizationRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.PriceOptimization
	nextID int
}

// NewPriceOptimizationRepository creates an empty price optimization repository
func NewPriceOptimizationRepository() *PriceOptimizationRepository {
	return &PriceOptimizationRepository{
		byID:   make(map[int]domain.PriceOptimization),
		nextID: 1,
	}
}

// List returns all price optimizations in unspecified order
func (r *PriceOptimizationRepository) List() []domain.PriceOptimization {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opts := make([]domain.PriceOptimization, 0, len(r.byID))
	for _, o := range r.byID {
		opts = append(opts, o)
	}
	return opts
}

// ListPending returns all optimizations still awaiting review
func (r *PriceOptimizationRepository) ListPending() []domain.PriceOptimization {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opts := make([]domain.PriceOptimization, 0)
	for _, o := range r.byID {
		if o.Status == domain.PriceStatusPending {
			opts = append(opts, o)
		}
	}
	return opts
}

// Get returns the optimization with the given id, if it exists
func (r *PriceOptimizationRepository) Get(id int) (domain.PriceOptimization, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	return o, ok
}

// Create assigns the next id, stamps CreatedAt and stores the optimization
func (r *PriceOptimizationRepository) Create(opt domain.PriceOptimization) domain.PriceOptimization {
	r.mu.Lock()
	defer r.mu.Unlock()

	opt.ID = r.nextID
	r.nextID++
	opt.CreatedAt = time.Now()
	r.byID[opt.ID] = opt
	return opt
}

// Update applies mutate to the stored optimization under the write lock
func (r *PriceOptimizationRepository) Update(id int, mutate func(*domain.PriceOptimization)) (domain.PriceOptimization, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok {
		return domain.PriceOptimization{}, false
	}
	mutate(&o)
	o.ID = id
	r.byID[id] = o
	return o, true
}

// Delete removes the optimization and reports whether it existed
func (r *PriceOptimizationRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
