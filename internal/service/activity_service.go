package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
)

// defaultActivityLimit caps the recent-activity feed when no limit is given.
const defaultActivityLimit = 10

// ActivityService handles the append-only agent activity ledger
type ActivityService struct {
	activities *repository.ActivityRepository
	logger     *zap.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(activities *repository.ActivityRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{activities: activities, logger: logger}
}

// ListRecent returns up to limit activities, newest first. A non-positive
// limit falls back to the default feed size.
func (s *ActivityService) ListRecent(ctx context.Context, limit int) ([]domain.AgentActivity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.activities.ListRecent(limit), nil
}

// Get retrieves an activity entry by id
func (s *ActivityService) Get(ctx context.Context, id int) (*domain.AgentActivity, error) {
	a, ok := s.activities.Get(id)
	if !ok {
		return nil, ErrActivityNotFound
	}
	return &a, nil
}

// Create appends an entry to the ledger
func (s *ActivityService) Create(ctx context.Context, req *domain.CreateActivityRequest) (*domain.AgentActivity, error) {
	a := s.activities.Create(domain.AgentActivity{
		AgentType:   req.AgentType,
		Title:       req.Title,
		Description: req.Description,
	})
	s.logger.Info("agent activity recorded", zap.Int("id", a.ID), zap.String("agent_type", a.AgentType))
	return &a, nil
}
