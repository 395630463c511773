package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

// Message is the JSON payload of an order lifecycle event.
type Message struct {
	Type           string    `json:"type"`
	OrderNumber    string    `json:"order_number"`
	ShipmentNumber string    `json:"shipment_number,omitempty"`
	Status         string    `json:"status"`
	CustomerID     string    `json:"customer_id"`
	StoreCode      string    `json:"store_code"`
	Total          string    `json:"total"`
	Currency       string    `json:"currency"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func NewMessage(e entities.OrderEvent) Message {
	return Message{
		Type:           string(e.Type),
		OrderNumber:    e.OrderNumber,
		ShipmentNumber: e.ShipmentNumber,
		Status:         e.Status,
		CustomerID:     e.CustomerID,
		StoreCode:      e.StoreCode,
		Total:          e.Total.StringFixed(2),
		Currency:       e.Currency,
		OccurredAt:     e.OccurredAt,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events keyed by order number, so all events of
// one order land on the same partition in commit order.
type KafkaPublisher struct {
	w messageWriter
}

func NewKafkaPublisher(brokers []string, topic string, batchTimeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: batchTimeout,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	b, err := json.Marshal(NewMessage(e))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderNumber),
		Value: b,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "event-type", Value: []byte(e.Type)},
		},
	})
	if err != nil {
		publishErrors.Inc()
		return fmt.Errorf("failed to publish %s: %w", e.Type, err)
	}
	eventsPublished.WithLabelValues(string(e.Type)).Inc()
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// LogPublisher only logs events. It is used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With(slog.String("publisher", "log"))}
}

func (p *LogPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	p.logger.InfoContext(ctx, "order event",
		slog.String("type", string(e.Type)),
		slog.String("order", e.OrderNumber),
		slog.String("shipment", e.ShipmentNumber),
		slog.String("status", e.Status),
	)
	eventsPublished.WithLabelValues(string(e.Type)).Inc()
	return nil
}

func (p *LogPublisher) Close() error { return nil }
