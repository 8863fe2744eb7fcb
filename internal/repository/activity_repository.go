package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/shelfwise/retail-api/internal/domain"
)

// ActivityRepository holds the append-only agent activity ledger.
// Activities are create/read/delete only; there is no partial update.
type ActivityRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.AgentActivity
	nextID int
}

// NewActivityRepository creates an empty activity repository
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{
		byID:   make(map[int]domain.AgentActivity),
		nextID: 1,
	}
}

// List returns all activities sorted most recent first, id as tiebreak
func (r *ActivityRepository) List() []domain.AgentActivity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := make([]domain.AgentActivity, 0, len(r.byID))
	for _, a := range r.byID {
		activities = append(activities, a)
	}
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Timestamp.Equal(activities[j].Timestamp) {
			return activities[i].ID > activities[j].ID
		}
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	return activities
}

// ListRecent returns up to limit of the most recent activities
func (r *ActivityRepository) ListRecent(limit int) []domain.AgentActivity {
	activities := r.List()
	if limit >= 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}

// Get returns the activity with the given id, if it exists
func (r *ActivityRepository) Get(id int) (domain.AgentActivity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	return a, ok
}

// Create assigns the next id, stamps the timestamp and stores the activity
func (r *ActivityRepository) Create(activity domain.AgentActivity) domain.AgentActivity {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity.ID = r.nextID
	r.nextID++
	activity.Timestamp = time.Now()
	r.byID[activity.ID] = activity
	return activity
}

// Delete removes the activity and reports whether it existed
func (r *ActivityRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
