package repository

import (
	"sync"
	"time"

	"github.com/shelfwise/retail-api/internal/domain"
)

// CommunicationRepository holds all agent chat threads keyed by id
type CommunicationRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.AgentCommunication
	nextID int
}

// NewCommunicationRepository creates an empty communication repository
func NewCommunicationRepository() *CommunicationRepository {
	return &CommunicationRepository{
		byID:   make(map[int]domain.AgentCommunication),
		nextID: 1,
	}
}

// List returns all communication threads in unspecified order
func (r *CommunicationRepository) List() []domain.AgentCommunication {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comms := make([]domain.AgentCommunication, 0, len(r.byID))
	for _, c := range r.byID {
		comms = append(comms, c)
	}
	return comms
}

// Get returns the thread with the given id, if it exists
func (r *CommunicationRepository) Get(id int) (domain.AgentCommunication, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	return c, ok
}

// Create assigns the next id, stamps LastActivityAt and stores the thread
func (r *CommunicationRepository) Create(comm domain.AgentCommunication) domain.AgentCommunication {
	r.mu.Lock()
	defer r.mu.Unlock()

	comm.ID = r.nextID
	r.nextID++
	comm.LastActivityAt = time.Now()
	r.byID[comm.ID] = comm
	return comm
}

// Update applies mutate under the write lock and refreshes LastActivityAt
func (r *CommunicationRepository) Update(id int, mutate func(*domain.AgentCommunication)) (domain.AgentCommunication, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.AgentCommunication{}, false
	}
	mutate(&c)
	c.ID = id
	c.LastActivityAt = time.Now()
	r.byID[id] = c
	return c, true
}

// Touch refreshes LastActivityAt without changing anything else. Called when
// a message is appended so thread recency follows its latest message.
func (r *CommunicationRepository) Touch(id int) (domain.AgentCommunication, bool) {
	return r.Update(id, func(*domain.AgentCommunication) {})
}

// Delete removes the thread and reports whether it existed
func (r *CommunicationRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
