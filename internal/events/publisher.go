package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/adverra/backend/internal/domain"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Event names.
const (
	EventTransactionCreated       = "transaction.created"
	EventTransactionStatusChanged = "transaction.status_changed"
)

// TransactionEvent is the wire payload for transaction lifecycle events.
type TransactionEvent struct {
	Event         string    `json:"event"`
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// KafkaPublisher writes transaction events to a single topic. Publishing
// is best effort: failures are logged and never returned to the caller.
type KafkaPublisher struct {
	writer *kafkaGo.Writer
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafkaGo.Writer{
			Addr:     kafkaGo.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafkaGo.LeastBytes{},
		},
	}
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// TransactionCreated publishes a transaction.created event.
func (p *KafkaPublisher) TransactionCreated(ctx context.Context, t *domain.Transaction) {
	p.publish(ctx, EventTransactionCreated, t)
}

// TransactionStatusChanged publishes a transaction.status_changed event.
func (p *KafkaPublisher) TransactionStatusChanged(ctx context.Context, t *domain.Transaction) {
	p.publish(ctx, EventTransactionStatusChanged, t)
}

func (p *KafkaPublisher) publish(ctx context.Context, event string, t *domain.Transaction) {
	payload, err := json.Marshal(TransactionEvent{
		Event:         event,
		TransactionID: t.ID,
		UserID:        t.UserID,
		Type:          t.Type,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Status:        t.Status,
		Timestamp:     time.Now(),
	})
	if err != nil {
		log.Printf("[Events] Failed to marshal %s: %v", event, err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(t.ID),
		Value: payload,
	})
	if err != nil {
		log.Printf("[Events] Failed to publish %s for %s: %v", event, t.ID, err)
	}
}

// NoopPublisher discards all events. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) TransactionCreated(context.Context, *domain.Transaction)       {}
func (NoopPublisher) TransactionStatusChanged(context.Context, *domain.Transaction) {}
