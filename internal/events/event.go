package events

import "github.com/shelfwise/retail-api/internal/domain"

// Event types carried on the realtime topic. The type string doubles as the
// "type" field of the JSON frame pushed to websocket clients.
const (
	TypeConnected               = "connected"
	TypeAgentMessage            = "agent_message"
	TypeNewMessage              = "new_message"
	TypeNewForecast             = "new_forecast"
	TypeNewPriceOptimization    = "new_price_optimization"
	TypeUpdatePriceOptimization = "update_price_optimization"
)

// Event is the wire envelope for realtime notifications. Exactly one of the
// payload fields is set, matching the event type.
type Event struct {
	Type         string                    `json:"type"`
	Message      *domain.Message           `json:"message,omitempty"`
	Forecast     *domain.Forecast          `json:"forecast,omitempty"`
	Optimization *domain.PriceOptimization `json:"optimization,omitempty"`
}

// NewMessage wraps a freshly appended chat message.
func NewMessage(m domain.Message) Event {
	return Event{Type: TypeNewMessage, Message: &m}
}

// NewForecast wraps a freshly generated forecast.
func NewForecast(f domain.Forecast) Event {
	return Event{Type: TypeNewForecast, Forecast: &f}
}

// NewPriceOptimization wraps a freshly generated price suggestion.
func NewPriceOptimization(o domain.PriceOptimization) Event {
	return Event{Type: TypeNewPriceOptimization, Optimization: &o}
}

// UpdatedPriceOptimization wraps a price suggestion whose status changed.
func UpdatedPriceOptimization(o domain.PriceOptimization) Event {
	return Event{Type: TypeUpdatePriceOptimization, Optimization: &o}
}
