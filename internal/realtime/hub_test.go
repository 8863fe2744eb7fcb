package realtime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/events"
	"github.com/shelfwise/retail-api/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedMessage struct {
	communicationID int
	agentType       string
	respondingAgent string
	content         string
}

type recordingHandler struct {
	calls chan recordedMessage
}

func (h *recordingHandler) HandleAgentMessage(ctx context.Context, communicationID int, agentType, respondingAgent, content string) error {
	h.calls <- recordedMessage{communicationID, agentType, respondingAgent, content}
	return nil
}

func setupHub(t *testing.T) (*realtime.Hub, *events.Bus, *recordingHandler, *httptest.Server) {
	t.Helper()

	bus := events.NewBus(zap.NewNop())
	handler := &recordingHandler{calls: make(chan recordedMessage, 8)}
	hub := realtime.NewHub(bus, handler, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = hub.Run(ctx) }()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(func() {
		srv.Close()
		cancel()
		_ = bus.Close()
	})
	return hub, bus, handler, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame map[string]any
	require.NoError(t, json.Unmarshal(raw, &frame))
	return frame
}

func TestHub_HandshakeOnConnect(t *testing.T) {
	_, _, _, srv := setupHub(t)

	conn := dial(t, srv)
	frame := readEvent(t, conn)

	assert.Equal(t, "connected", frame["type"])
	assert.NotEmpty(t, frame["clientId"])
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	_, bus, _, srv := setupHub(t)

	first := dial(t, srv)
	second := dial(t, srv)
	readEvent(t, first)
	readEvent(t, second)

	forecast := domain.Forecast{ID: 3, ProductID: 1, LocationID: 1, PredictedDemand: 250, Confidence: 0.7}
	require.NoError(t, bus.Publish(events.NewForecast(forecast)))

	for _, conn := range []*websocket.Conn{first, second} {
		frame := readEvent(t, conn)
		assert.Equal(t, "new_forecast", frame["type"])
	}
}

func TestHub_DeadClientDoesNotBlockOthers(t *testing.T) {
	_, bus, _, srv := setupHub(t)

	first := dial(t, srv)
	dead := dial(t, srv)
	third := dial(t, srv)
	readEvent(t, first)
	readEvent(t, dead)
	readEvent(t, third)

	require.NoError(t, dead.Close())
	// Let the hub process the disconnect
	time.Sleep(100 * time.Millisecond)

	opt := domain.PriceOptimization{ID: 1, ProductID: 1, CurrentPrice: 100, SuggestedPrice: 70, PercentageChange: -30}
	require.NoError(t, bus.Publish(events.NewPriceOptimization(opt)))

	for _, conn := range []*websocket.Conn{first, third} {
		frame := readEvent(t, conn)
		assert.Equal(t, "new_price_optimization", frame["type"])
	}
}

func TestHub_InboundAgentMessage(t *testing.T) {
	_, _, handler, srv := setupHub(t)

	conn := dial(t, srv)
	readEvent(t, conn)

	payload := map[string]any{
		"type":                "agent_message",
		"agentType":           "user",
		"respondingAgentType": "inventory",
		"content":             "How is stock?",
		"communicationId":     3,
	}
	require.NoError(t, conn.WriteJSON(payload))

	select {
	case call := <-handler.calls:
		assert.Equal(t, 3, call.communicationID)
		assert.Equal(t, "user", call.agentType)
		assert.Equal(t, "inventory", call.respondingAgent)
		assert.Equal(t, "How is stock?", call.content)
	case <-time.After(2 * time.Second):
		t.Fatal("agent message never reached the handler")
	}
}

func TestHub_IgnoresUnknownFrameTypes(t *testing.T) {
	_, _, handler, srv := setupHub(t)

	conn := dial(t, srv)
	readEvent(t, conn)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "ping"}))
	require.NoError(t, conn.WriteJSON(map[string]any{
		"type":            "agent_message",
		"agentType":       "user",
		"content":         "after the ping",
		"communicationId": 1,
	}))

	call := <-handler.calls
	assert.Equal(t, "after the ping", call.content)
}
