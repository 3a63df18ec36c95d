package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ethanbaker/notion-records/pkg/utils"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

// DEFAULT_QUEUE is used when no AMQP_QUEUE is configured
const DEFAULT_QUEUE = "record_changes"

// Type names a record change
type Type string

const (
	RecordCreated Type = "record.created"
	RecordUpdated Type = "record.updated"
	RecordDeleted Type = "record.deleted"
)

// Event announces a change made to a record
type Event struct {
	Type       Type      `json:"type"`
	RecordID   string    `json:"record_id,omitempty"`
	PageID     string    `json:"page_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher sends record change events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NewPublisherFromConfig connects to the broker at AMQP_URL, or returns a
// publisher that drops events when it is not set
func NewPublisherFromConfig(cfg *utils.Config, log zerolog.Logger) (Publisher, error) {
	url := cfg.Get("AMQP_URL")
	if url == "" {
		log.Info().Str("module", "events").Msg("AMQP_URL not set, record change events are disabled")
		return NopPublisher{}, nil
	}

	publisher, err := NewAMQPPublisher(url, cfg.GetWithDefault("AMQP_QUEUE", DEFAULT_QUEUE))
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

// AMQPPublisher publishes events as JSON messages to a durable queue
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mutex   sync.Mutex
}

// NewAMQPPublisher dials the broker and declares the queue
func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	q, err := channel.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel, queue: q.Name}, nil
}

// Publish sends one event. Publishes share one channel and are serialized
func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := encode(event)
	if err != nil {
		return err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	err = p.channel.Publish(
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

func encode(event Event) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}
	return body, nil
}
