package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Connect dials the NATS server used for write events.
func Connect(url, clientName string) (*nats.Conn, error) {
	if url == "" {
		return nil, fmt.Errorf("nats url must not be empty")
	}

	conn, err := nats.Connect(url,
		nats.Name(clientName),
		nats.Timeout(3*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to nats: %w", err)
	}
	return conn, nil
}

type natsConn interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
}

// Bus publishes and subscribes through NATS.
type Bus struct {
	conn    natsConn
	service string
	logger  zerolog.Logger
	now     func() time.Time
}

// NewBus builds a NATS-backed publisher and subscriber. A nil connection
// yields a bus that behaves like Nop.
func NewBus(conn *nats.Conn, service string, logger zerolog.Logger) *Bus {
	bus := &Bus{
		service: service,
		logger:  logger.With().Str("component", "event_bus").Logger(),
		now:     time.Now,
	}
	if conn != nil {
		bus.conn = conn
	}
	return bus
}

// Publish sends the event; failures are only logged.
func (b *Bus) Publish(_ context.Context, entity, action string, id uint) {
	if b.conn == nil {
		return
	}

	subject := Subject(entity, action)
	payload, err := json.Marshal(Event{
		Type:       entity + "." + action,
		Entity:     entity,
		ID:         id,
		Service:    b.service,
		OccurredAt: b.now().UTC(),
	})
	if err != nil {
		b.logger.Warn().Err(err).Str("subject", subject).Msg("failed to encode event")
		return
	}

	if err := b.conn.Publish(subject, payload); err != nil {
		b.logger.Warn().Err(err).Str("subject", subject).Uint("id", id).Msg("failed to publish event")
	}
}

// Subscribe registers handle for subject and returns a function that drains
// the subscription.
func (b *Bus) Subscribe(subject string, handle func(context.Context, Event)) (func(), error) {
	if b.conn == nil {
		return func() {}, nil
	}

	sub, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		b.dispatch(msg.Data, handle)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}

	return func() {
		if sub == nil {
			return
		}
		if err := sub.Drain(); err != nil {
			b.logger.Warn().Err(err).Str("subject", subject).Msg("failed to drain subscription")
		}
	}, nil
}

func (b *Bus) dispatch(data []byte, handle func(context.Context, Event)) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		b.logger.Warn().Err(err).Msg("invalid event payload")
		return
	}
	handle(context.Background(), event)
}
