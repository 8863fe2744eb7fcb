package repository

import (
	"sync"

	"github.com/shelfwise/retail-api/internal/domain"
)

// UserRepository holds all dashboard users keyed by id
type UserRepository struct {
	mu     sync.RWMutex
	byID   map[int]domain.User
	nextID int
}

// NewUserRepository creates an empty user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:   make(map[int]domain.User),
		nextID: 1,
	}
}

// Get returns the user with the given id, if it exists
func (r *UserRepository) Get(id int) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	return u, ok
}

// GetByUsername returns the user with the given username via a linear scan
func (r *UserRepository) GetByUsername(username string) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username == username {
			return u, true
		}
	}
	return domain.User{}, false
}

// Create assigns the next id and stores the user.
// Fails with ErrUsernameTaken when the username is already registered;
// the id counter is not consumed on failure.
func (r *UserRepository) Create(user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Username == user.Username {
			return domain.User{}, ErrUsernameTaken
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.byID[user.ID] = user
	return user, nil
}

// Delete removes the user and reports whether it existed
func (r *UserRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok
}
