// Package events provides the in-process pub/sub bus that decouples the
// services writing store changes from the websocket hub streaming them out.
// It is built on Watermill's GoChannel transport: broadcast semantics, every
// subscriber sees every message, nothing is persisted.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

// Topic is the single topic all realtime events flow through.
const Topic = "realtime"

// Bus is an in-memory broadcast bus for realtime events.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger *zap.Logger
}

// NewBus creates a bus with a small per-subscriber buffer. A slow subscriber
// only delays its own channel, not the publishers.
func NewBus(logger *zap.Logger) *Bus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		&zapAdapter{logger: logger},
	)
	return &Bus{pubsub: pubsub, logger: logger}
}

// Publish marshals the event and sends it on the realtime topic.
func (b *Bus) Publish(evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("events: marshal %s: %w", evt.Type, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubsub.Publish(Topic, msg); err != nil {
		return fmt.Errorf("events: publish %s: %w", evt.Type, err)
	}
	return nil
}

// Subscribe returns a channel of raw event frames from the realtime topic.
// The channel closes when ctx is cancelled or the bus is closed. Consumers
// must Ack every message.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	ch, err := b.pubsub.Subscribe(ctx, Topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe: %w", err)
	}
	return ch, nil
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// zapAdapter bridges *zap.Logger to watermill.LoggerAdapter.
type zapAdapter struct{ logger *zap.Logger }

func (a *zapAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.logger.Error(msg, append(fieldsToZap(fields), zap.Error(err))...)
}
func (a *zapAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, fieldsToZap(fields)...)
}
func (a *zapAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, fieldsToZap(fields)...)
}
func (a *zapAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, fieldsToZap(fields)...)
}
func (a *zapAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapAdapter{logger: a.logger.With(fieldsToZap(fields)...)}
}

func fieldsToZap(fields watermill.LogFields) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}
