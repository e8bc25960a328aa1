//go:build unit

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"booking-gateway/internal/infra"
	"booking-gateway/internal/pkg/config"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublish(t *testing.T) {
	at := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)

	t.Run("writes keyed json message", func(t *testing.T) {
		w := &fakeWriter{}
		p := newPublisher(w, nil)

		err := p.Publish(context.Background(), Event{
			Type:          TypeTransitioned,
			ReservationID: 42,
			UserID:        7,
			Role:          "business",
			Status:        "Confirmed",
			OccurredAt:    at,
		})
		require.NoError(t, err)
		require.Len(t, w.msgs, 1)

		msg := w.msgs[0]
		assert.Equal(t, "reservation-42", string(msg.Key))
		assert.Equal(t, "reservation.transitioned", header(msg, "event-type"))
		assert.Equal(t, at, msg.Time)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, "Confirmed", decoded["status"])
		assert.NotContains(t, decoded, "startTime")
	})

	t.Run("new bookings are keyed by service", func(t *testing.T) {
		assert.Equal(t, "service-11", Event{Type: TypeRequested, ServiceID: 11}.Key())
	})

	t.Run("write failure is a publish error", func(t *testing.T) {
		p := newPublisher(&fakeWriter{err: errors.New("broker down")}, nil)
		err := p.Publish(context.Background(), Event{Type: TypeRequested, ServiceID: 1, OccurredAt: at})
		assert.True(t, infra.IsKind(err, infra.KindPublish))
	})

	t.Run("close closes writer", func(t *testing.T) {
		w := &fakeWriter{}
		require.NoError(t, newPublisher(w, nil).Close())
		assert.True(t, w.closed)
	})
}

func TestDisabledPublisher(t *testing.T) {
	w := NewKafkaWriter(config.KafkaConfig{Topic: "booking.events"})
	require.Nil(t, w)

	p := NewKafkaPublisher(w, nil)
	assert.NoError(t, p.Publish(context.Background(), Event{Type: TypeRequested}))
	assert.NoError(t, p.Close())
}

func TestKafkaWriterConfig(t *testing.T) {
	w := NewKafkaWriter(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "booking.events"})
	require.NotNil(t, w)
	assert.Equal(t, "booking.events", w.Topic)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}
