package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    []byte
}

type fakeConn struct {
	published  []published
	publishErr error
	handlers   map[string]nats.MsgHandler
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{subject: subject, data: data})
	return nil
}

func (f *fakeConn) Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error) {
	if f.handlers == nil {
		f.handlers = map[string]nats.MsgHandler{}
	}
	f.handlers[subject] = cb
	return nil, nil
}

func newTestBus(conn natsConn) *Bus {
	fixed := time.Date(2025, time.November, 20, 10, 0, 0, 0, time.UTC)
	return &Bus{conn: conn, service: "roster", logger: zerolog.Nop(), now: func() time.Time { return fixed }}
}

func TestBusPublishEncodesEvent(t *testing.T) {
	conn := &fakeConn{}
	bus := newTestBus(conn)

	bus.Publish(context.Background(), EntityClass, ActionDeleted, 4)

	require.Len(t, conn.published, 1)
	require.Equal(t, "school.class.deleted", conn.published[0].subject)

	var event Event
	require.NoError(t, json.Unmarshal(conn.published[0].data, &event))
	require.Equal(t, "class.deleted", event.Type)
	require.Equal(t, uint(4), event.ID)
	require.Equal(t, "roster", event.Service)
}

func TestBusPublishSwallowsErrors(t *testing.T) {
	bus := newTestBus(&fakeConn{publishErr: errors.New("nats: connection closed")})
	require.NotPanics(t, func() {
		bus.Publish(context.Background(), EntityStudent, ActionCreated, 1)
	})
}

func TestBusSubscribeDispatchesDecodedEvents(t *testing.T) {
	conn := &fakeConn{}
	bus := newTestBus(conn)

	var received []Event
	stop, err := bus.Subscribe(Subject(EntityClass, ActionDeleted), func(_ context.Context, event Event) {
		received = append(received, event)
	})
	require.NoError(t, err)
	defer stop()

	handler := conn.handlers["school.class.deleted"]
	require.NotNil(t, handler)

	handler(&nats.Msg{Data: []byte(`{"type":"class.deleted","entity":"class","id":9}`)})
	handler(&nats.Msg{Data: []byte(`not json`)})

	require.Len(t, received, 1)
	require.Equal(t, uint(9), received[0].ID)
}

func TestNilConnectionBehavesLikeNop(t *testing.T) {
	bus := NewBus(nil, "roster", zerolog.Nop())
	bus.Publish(context.Background(), EntityTeacher, ActionUpdated, 1)

	stop, err := bus.Subscribe("school.teacher.deleted", func(context.Context, Event) {})
	require.NoError(t, err)
	stop()
}
