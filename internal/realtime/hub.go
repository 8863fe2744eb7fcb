// Package realtime implements the websocket fan-out layer: a hub tracking
// connected dashboard sessions and pushing every event from the internal bus
// to all of them. Delivery is best effort; a client that cannot keep up is
// disconnected rather than buffered without bound.
package realtime

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/shelfwise/retail-api/internal/events"
)

// AgentMessageHandler processes inbound agent_message envelopes from clients.
type AgentMessageHandler interface {
	HandleAgentMessage(ctx context.Context, communicationID int, agentType, respondingAgent, content string) error
}

// Hub maintains the set of open clients and broadcasts event frames to them.
type Hub struct {
	bus      *events.Bus
	handler  AgentMessageHandler
	logger   *zap.Logger
	clients  map[*Client]struct{}
	register chan *Client
	leave    chan *Client
	frames   chan []byte
}

// NewHub creates a hub wired to the event bus. Run must be called before
// clients connect.
func NewHub(bus *events.Bus, handler AgentMessageHandler, logger *zap.Logger) *Hub {
	return &Hub{
		bus:      bus,
		handler:  handler,
		logger:   logger,
		clients:  make(map[*Client]struct{}),
		register: make(chan *Client),
		leave:    make(chan *Client),
		frames:   make(chan []byte, 64),
	}
}

// Run owns the client registry until ctx is cancelled. All registry access
// happens on this goroutine, so no lock is needed.
func (h *Hub) Run(ctx context.Context) error {
	sub, err := h.bus.Subscribe(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				c.closeSend()
			}
			return ctx.Err()

		case client := <-h.register:
			h.clients[client] = struct{}{}
			client.sendHandshake()
			h.logger.Info("websocket client connected",
				zap.String("client_id", client.ID), zap.Int("clients", len(h.clients)))

		case client := <-h.leave:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
				h.logger.Info("websocket client disconnected",
					zap.String("client_id", client.ID), zap.Int("clients", len(h.clients)))
			}

		case msg, ok := <-sub:
			if !ok {
				return nil
			}
			h.fanOut(msg.Payload)
			msg.Ack()

		case frame := <-h.frames:
			h.fanOut(frame)
		}
	}
}

// fanOut delivers one frame to every open client. A client whose buffer is
// full is dropped so it cannot stall the others.
func (h *Hub) fanOut(frame []byte) {
	for client := range h.clients {
		select {
		case client.send <- frame:
		default:
			delete(h.clients, client)
			client.closeSend()
			h.logger.Warn("dropping slow websocket client", zap.String("client_id", client.ID))
		}
	}
}

// Broadcast queues a raw frame for delivery to all open clients, bypassing
// the bus. Used for frames that originate inside the hub itself.
func (h *Hub) Broadcast(evt events.Event) {
	frame, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("failed to marshal broadcast frame", zap.Error(err))
		return
	}
	h.frames <- frame
}

// inboundEnvelope is the client-to-server message shape.
type inboundEnvelope struct {
	Type                string `json:"type"`
	AgentType           string `json:"agentType"`
	RespondingAgentType string `json:"respondingAgentType"`
	Content             string `json:"content"`
	CommunicationID     int    `json:"communicationId"`
}

// handleInbound dispatches one raw client frame. Unknown types are ignored.
func (h *Hub) handleInbound(ctx context.Context, client *Client, raw []byte) {
	var env inboundEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.logger.Warn("malformed websocket frame", zap.String("client_id", client.ID), zap.Error(err))
		return
	}
	if env.Type != events.TypeAgentMessage {
		return
	}

	if err := h.handler.HandleAgentMessage(ctx, env.CommunicationID, env.AgentType, env.RespondingAgentType, env.Content); err != nil {
		h.logger.Warn("failed to handle agent message",
			zap.String("client_id", client.ID),
			zap.Int("communication_id", env.CommunicationID),
			zap.Error(err))
	}
}
