package service_test

import (
	"context"
	"testing"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/service"
	"github.com/shelfwise/retail-api/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCommunicationFixture(t *testing.T, suggester suggest.Client) (*service.CommunicationService, *repository.Store) {
	t.Helper()
	store := repository.NewStore()
	bus := newTestBus()
	t.Cleanup(func() { _ = bus.Close() })
	svc := service.NewCommunicationService(store.Communications, store.Messages, suggester, bus, zap.NewNop())
	return svc, store
}

func TestCommunicationService_PostMessage(t *testing.T) {
	svc, store := newCommunicationFixture(t, &stubSuggester{reply: "Stock levels look fine."})
	ctx := context.Background()

	thread, err := svc.Create(ctx, &domain.CreateCommunicationRequest{Topic: "Restock"})
	require.NoError(t, err)

	posted, err := svc.PostMessage(ctx, thread.ID, &domain.PostMessageRequest{AgentType: "user", Content: "How is stock?"})
	require.NoError(t, err)
	require.Len(t, posted, 2)

	assert.Equal(t, "user", posted[0].AgentType)
	assert.Equal(t, "How is stock?", posted[0].Content)
	assert.Equal(t, "inventory", posted[1].AgentType)
	assert.Equal(t, "Stock levels look fine.", posted[1].Content)

	// Both messages are persisted in order
	messages, err := svc.ListMessages(ctx, thread.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, posted[0].ID, messages[0].ID)
	assert.Equal(t, posted[1].ID, messages[1].ID)

	// Thread recency follows the latest message
	updated, ok := store.Communications.Get(thread.ID)
	require.True(t, ok)
	assert.False(t, updated.LastActivityAt.Before(posted[1].Timestamp))
}

func TestCommunicationService_ResponderRotation(t *testing.T) {
	svc, _ := newCommunicationFixture(t, &stubSuggester{reply: "ack"})
	ctx := context.Background()

	thread, err := svc.Create(ctx, &domain.CreateCommunicationRequest{Topic: "Rotation"})
	require.NoError(t, err)

	// A forecast post lands on a transcript of length one, so the supplier
	// branch answers
	posted, err := svc.PostMessage(ctx, thread.ID, &domain.PostMessageRequest{AgentType: "forecast", Content: "Demand spike?"})
	require.NoError(t, err)
	assert.Equal(t, "supplier", posted[1].AgentType)

	posted, err = svc.PostMessage(ctx, thread.ID, &domain.PostMessageRequest{AgentType: "inventory", Content: "Shelf check"})
	require.NoError(t, err)
	assert.Equal(t, "pricing", posted[1].AgentType)

	posted, err = svc.PostMessage(ctx, thread.ID, &domain.PostMessageRequest{AgentType: "supplier", Content: "Lead times"})
	require.NoError(t, err)
	assert.Equal(t, "forecast", posted[1].AgentType)
}

func TestCommunicationService_PostMessageUnknownThread(t *testing.T) {
	svc, _ := newCommunicationFixture(t, &stubSuggester{})

	_, err := svc.PostMessage(context.Background(), 42, &domain.PostMessageRequest{AgentType: "user", Content: "hello"})
	assert.ErrorIs(t, err, service.ErrCommunicationNotFound)

	_, err = svc.ListMessages(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrCommunicationNotFound)
}

func TestCommunicationService_HandleAgentMessage(t *testing.T) {
	svc, store := newCommunicationFixture(t, &stubSuggester{reply: "noted"})
	ctx := context.Background()

	thread, err := svc.Create(ctx, &domain.CreateCommunicationRequest{Topic: "Inbound"})
	require.NoError(t, err)

	// Without a responding agent the reply speaks as the system
	require.NoError(t, svc.HandleAgentMessage(ctx, thread.ID, "user", "", "anyone there?"))

	messages := store.Messages.ListByCommunication(thread.ID)
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].AgentType)
	assert.Equal(t, "system", messages[1].AgentType)
	assert.Equal(t, "noted", messages[1].Content)

	assert.ErrorIs(t, svc.HandleAgentMessage(ctx, 42, "user", "", "lost"), service.ErrCommunicationNotFound)
}

func TestCommunicationService_ListOrdersByRecency(t *testing.T) {
	svc, _ := newCommunicationFixture(t, &stubSuggester{reply: "ack"})
	ctx := context.Background()

	first, err := svc.Create(ctx, &domain.CreateCommunicationRequest{Topic: "Old"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &domain.CreateCommunicationRequest{Topic: "New"})
	require.NoError(t, err)

	// Activity on the older thread moves it to the front
	_, err = svc.PostMessage(ctx, first.ID, &domain.PostMessageRequest{AgentType: "user", Content: "bump"})
	require.NoError(t, err)

	threads, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, first.ID, threads[0].ID)
	assert.Equal(t, second.ID, threads[1].ID)
}
