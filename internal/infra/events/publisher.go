package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"booking-gateway/internal/infra"
	"booking-gateway/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

type Type string

const (
	TypeRequested    Type = "reservation.requested"
	TypeRescheduled  Type = "reservation.rescheduled"
	TypeTransitioned Type = "reservation.transitioned"
)

// Event describes a reservation mutation the marketplace accepted.
type Event struct {
	Type          Type       `json:"type"`
	ReservationID int64      `json:"reservationId,omitempty"`
	ServiceID     int64      `json:"serviceId,omitempty"`
	UserID        int64      `json:"userId"`
	Role          string     `json:"role"`
	Status        string     `json:"status,omitempty"`
	StartTime     *time.Time `json:"startTime,omitempty"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	OccurredAt    time.Time  `json:"occurredAt"`
}

// Key keeps every event of one reservation on the same partition. New bookings have no id
// yet and are keyed by service.
func (e Event) Key() string {
	if e.ReservationID != 0 {
		return "reservation-" + strconv.FormatInt(e.ReservationID, 10)
	}
	return "service-" + strconv.FormatInt(e.ServiceID, 10)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a single topic. With no writer it drops events.
type KafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	if !cfg.Enabled() {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
	}
}

func NewKafkaPublisher(writer *kafka.Writer, logger *slog.Logger) *KafkaPublisher {
	if writer == nil {
		return &KafkaPublisher{logger: logger}
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

func newPublisher(w messageWriter, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	if p.writer == nil {
		return nil
	}

	value, err := json.Marshal(e)
	if err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindPublish, "failed to encode event", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.Key()),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(e.Type)},
			{Key: "content-type", Value: []byte("application/json")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindPublish, "failed to publish event", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
