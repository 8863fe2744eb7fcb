package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
)

// UserService handles dashboard accounts. Passwords are stored opaque and
// never leave the service.
type UserService struct {
	users  *repository.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new user service instance
func NewUserService(users *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Get retrieves a user by id
func (s *UserService) Get(ctx context.Context, id int) (*domain.UserResponse, error) {
	u, ok := s.users.Get(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return &domain.UserResponse{ID: u.ID, Username: u.Username}, nil
}

// GetByUsername retrieves a user by username
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.UserResponse, error) {
	u, ok := s.users.GetByUsername(username)
	if !ok {
		return nil, ErrUserNotFound
	}
	return &domain.UserResponse{ID: u.ID, Username: u.Username}, nil
}

// Create registers a new user. The username must be unique.
func (s *UserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.UserResponse, error) {
	u, err := s.users.Create(domain.User{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	s.logger.Info("user created", zap.Int("id", u.ID), zap.String("username", u.Username))
	return &domain.UserResponse{ID: u.ID, Username: u.Username}, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id int) error {
	if !s.users.Delete(id) {
		return ErrUserNotFound
	}
	s.logger.Info("user deleted", zap.Int("id", id))
	return nil
}
