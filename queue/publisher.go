// Package queue publishes payment status events to RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const PaymentStatusQueue = "registration.payment"

// PaymentStatusChanged is emitted once a registration reaches a notified
// status. Amount is in minor units.
type PaymentStatusChanged struct {
	ClientReference string    `json:"clientReference"`
	EventType       string    `json:"eventType"`
	Status          string    `json:"status"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// Publisher keeps one connection and channel open and re-dials lazily after
// the broker drops them.
type Publisher struct {
	url       string
	queueName string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(url string, queueName string) *Publisher {
	if queueName == "" {
		queueName = PaymentStatusQueue
	}
	return &Publisher{
		url:       url,
		queueName: queueName,
	}
}

// Connect dials the broker and declares the queue.
func (p *Publisher) Connect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ensureChannel()
}

func (p *Publisher) Publish(ctx context.Context, evt PaymentStatusChanged) error {
	pub, err := newPublishing(evt, time.Now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ensureChannel()
	if err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx, "", p.queueName, false, false, pub)
	if err != nil {
		return fmt.Errorf("failed to publish to %q: %w", p.queueName, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// ensureChannel must be called with mu held.
func (p *Publisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return fmt.Errorf("failed to dial rabbitmq: %w", err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("failed to declare queue %q: %w", p.queueName, err)
	}

	p.ch = ch
	return nil
}

func newPublishing(evt PaymentStatusChanged, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to encode event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now.UTC(),
		MessageId:    fmt.Sprintf("%s:%s", evt.ClientReference, evt.Status),
		Body:         body,
	}, nil
}
