package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/shelfwise/retail-api/internal/domain"
)

// ForecastRepository holds all demand forecasts keyed by id.
// Forecasts are create/read/delete only; there is no partial update.
type ForecastRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.Forecast
	nextID int
}

// NewForecastRepository creates an empty forecast repository
func NewForecastRepository() *ForecastRepository {
	return &ForecastRepository{
		byID:   make(map[int]domain.Forecast),
		nextID: 1,
	}
}

// List returns all forecasts in unspecified order
func (r *ForecastRepository) List() []domain.Forecast {
	r.mu.RLock()
	defer r.mu.RUnlock()

	forecasts := make([]domain.Forecast, 0, len(r.byID))
	for _, f := range r.byID {
		forecasts = append(forecasts, f)
	}
	return forecasts
}

// ListLatest returns all forecasts sorted most recent first.
// Ties on CreatedAt fall back to id so the order stays stable when several
// forecasts are created within one clock tick.
func (r *ForecastRepository) ListLatest() []domain.Forecast {
	forecasts := r.List()
	sort.Slice(forecasts, func(i, j int) bool {
		if forecasts[i].CreatedAt.Equal(forecasts[j].CreatedAt) {
			return forecasts[i].ID > forecasts[j].ID
		}
		return forecasts[i].CreatedAt.After(forecasts[j].CreatedAt)
	})
	return forecasts
}

// Get returns the forecast with the given id, if it exists
func (r *ForecastRepository) Get(id int) (domain.Forecast, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	return f, ok
}

// Create assigns the next id, stamps CreatedAt and stores the forecast
func (r *ForecastRepository) Create(forecast domain.Forecast) domain.Forecast {
	r.mu.Lock()
	defer r.mu.Unlock()

	forecast.ID = r.nextID
	r.nextID++
	forecast.CreatedAt = time.Now()
	r.byID[forecast.ID] = forecast
	return forecast
}

// Delete removes the forecast and reports whether it existed
func (r *ForecastRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
