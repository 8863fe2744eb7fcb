package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/events"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/suggest"
)

// CommunicationService handles agent chat threads, their transcripts and the
// simulated agent replies
type CommunicationService struct {
	communications *repository.CommunicationRepository
	messages       *repository.MessageRepository
	suggester      suggest.Client
	bus            *events.Bus
	logger         *zap.Logger
}

// NewCommunicationService creates a new communication service instance
func NewCommunicationService(
	communications *repository.CommunicationRepository,
	messages *repository.MessageRepository,
	suggester suggest.Client,
	bus *events.Bus,
	logger *zap.Logger,
) *CommunicationService {
	return &CommunicationService{
		communications: communications,
		messages:       messages,
		suggester:      suggester,
		bus:            bus,
		logger:         logger,
	}
}

// List returns all communication threads, most recently active first
func (s *CommunicationService) List(ctx context.Context) ([]domain.AgentCommunication, error) {
	comms := s.communications.List()
	sort.Slice(comms, func(i, j int) bool {
		if !comms[i].LastActivityAt.Equal(comms[j].LastActivityAt) {
			return comms[i].LastActivityAt.After(comms[j].LastActivityAt)
		}
		return comms[i].ID > comms[j].ID
	})
	return comms, nil
}

// Get retrieves a communication thread by id
func (s *CommunicationService) Get(ctx context.Context, id int) (*domain.AgentCommunication, error) {
	c, ok := s.communications.Get(id)
	if !ok {
		return nil, ErrCommunicationNotFound
	}
	return &c, nil
}

// Create opens a new communication thread
func (s *CommunicationService) Create(ctx context.Context, req *domain.CreateCommunicationRequest) (*domain.AgentCommunication, error) {
	c := s.communications.Create(domain.AgentCommunication{Topic: req.Topic})
	s.logger.Info("communication created", zap.Int("id", c.ID), zap.String("topic", c.Topic))
	return &c, nil
}

// Update applies a partial update to a thread
func (s *CommunicationService) Update(ctx context.Context, id int, req *domain.UpdateCommunicationRequest) (*domain.AgentCommunication, error) {
	c, ok := s.communications.Update(id, func(c *domain.AgentCommunication) {
		if req.Topic != nil {
			c.Topic = *req.Topic
		}
	})
	if !ok {
		return nil, ErrCommunicationNotFound
	}
	return &c, nil
}

// Delete removes a thread. Its messages stay in the store but are no longer
// reachable through the thread.
func (s *CommunicationService) Delete(ctx context.Context, id int) error {
	if !s.communications.Delete(id) {
		return ErrCommunicationNotFound
	}
	s.logger.Info("communication deleted", zap.Int("id", id))
	return nil
}

// ListMessages returns the transcript of a thread in chat order
func (s *CommunicationService) ListMessages(ctx context.Context, communicationID int) ([]domain.Message, error) {
	if _, ok := s.communications.Get(communicationID); !ok {
		return nil, ErrCommunicationNotFound
	}
	return s.messages.ListByCommunication(communicationID), nil
}

// PostMessage appends a message to a thread, picks the agent that should
// answer, synthesizes its reply and appends that too. Both messages refresh
// the thread's lastActivityAt and are pushed to realtime subscribers. The
// returned slice holds the original message followed by the reply.
func (s *CommunicationService) PostMessage(ctx context.Context, communicationID int, req *domain.PostMessageRequest) ([]domain.Message, error) {
	if _, ok := s.communications.Get(communicationID); !ok {
		return nil, ErrCommunicationNotFound
	}

	message := s.appendMessage(communicationID, req.AgentType, req.Content)

	transcript := s.messages.ListByCommunication(communicationID)
	respondingAgent := respondingAgentType(req.AgentType, len(transcript))

	replyContent := s.suggester.Converse(ctx, respondingAgent, req.Content, transcript)
	reply := s.appendMessage(communicationID, respondingAgent, replyContent)

	s.logger.Info("message posted",
		zap.Int("communication_id", communicationID),
		zap.String("agent_type", req.AgentType),
		zap.String("responding_agent", respondingAgent))

	return []domain.Message{message, reply}, nil
}

// HandleAgentMessage processes an inbound realtime agent_message envelope:
// the original content and a synthesized reply are both persisted and pushed
// to subscribers. The reply speaks as respondingAgent, or "system" when the
// sender did not name one.
func (s *CommunicationService) HandleAgentMessage(ctx context.Context, communicationID int, agentType, respondingAgent, content string) error {
	if _, ok := s.communications.Get(communicationID); !ok {
		return ErrCommunicationNotFound
	}
	if respondingAgent == "" {
		respondingAgent = "system"
	}

	s.appendMessage(communicationID, agentType, content)

	transcript := s.messages.ListByCommunication(communicationID)
	replyContent := s.suggester.Converse(ctx, respondingAgent, content, transcript)
	s.appendMessage(communicationID, respondingAgent, replyContent)

	return nil
}

// appendMessage stores a message, refreshes the parent thread's recency and
// broadcasts it.
func (s *CommunicationService) appendMessage(communicationID int, agentType, content string) domain.Message {
	message := s.messages.Create(domain.Message{
		CommunicationID: communicationID,
		AgentType:       agentType,
		Content:         content,
	})
	s.communications.Touch(communicationID)

	if err := s.bus.Publish(events.NewMessage(message)); err != nil {
		s.logger.Warn("failed to publish message event", zap.Error(err))
	}
	return message
}

// respondingAgentType rotates the answering agent based on who spoke and how
// long the thread already is, so consecutive posts by the same agent get
// replies from alternating counterparts.
func respondingAgentType(agentType string, transcriptLen int) string {
	even := transcriptLen%2 == 0
	switch agentType {
	case "forecast":
		if even {
			return "inventory"
		}
		return "supplier"
	case "inventory":
		if even {
			return "supplier"
		}
		return "pricing"
	case "supplier":
		if even {
			return "pricing"
		}
		return "forecast"
	default:
		if even {
			return "forecast"
		}
		return "inventory"
	}
}
