package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/shelfwise/retail-api/internal/domain"
)

// MessageRepository holds all chat messages keyed by id.
// Messages are create/read/delete only; there is no partial update.
type MessageRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.Message
	nextID int
}

// NewMessageRepository creates an empty message repository
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		byID:   make(map[int]domain.Message),
		nextID: 1,
	}
}

// ListByCommunication returns a thread's transcript in timestamp order.
// The id tiebreak keeps the order stable when two messages land within the
// same clock tick: ids are assigned under the same lock as the timestamp,
// so id order equals creation order.
func (r *MessageRepository) ListByCommunication(communicationID int) []domain.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]domain.Message, 0)
	for _, m := range r.byID {
		if m.CommunicationID == communicationID {
			messages = append(messages, m)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages
}

// Get returns the message with the given id, if it exists
func (r *MessageRepository) Get(id int) (domain.Message, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	return m, ok
}

// Create assigns the next id, stamps the timestamp and stores the message
func (r *MessageRepository) Create(message domain.Message) domain.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = r.nextID
	r.nextID++
	message.Timestamp = time.Now()
	r.byID[message.ID] = message
	return message
}

// Delete removes the message and reports whether it existed
func (r *MessageRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
