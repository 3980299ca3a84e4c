// Package smsqueue hands composed SMS messages to the dispatcher service
// over RabbitMQ. The dispatcher owns the carrier integration; this side only
// needs the broker to accept the message.
package smsqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"snackshop/internal/core/domain/model/sms"
	"snackshop/internal/pkg/errs"

	"github.com/streadway/amqp"
)

// confirmTimeout bounds the wait for a broker ack when ctx has no deadline.
const confirmTimeout = 5 * time.Second

// payload is the message body the dispatcher consumes.
type payload struct {
	OrderID  int64     `json:"orderId"`
	To       string    `json:"to"`
	Text     string    `json:"text"`
	QueuedAt time.Time `json:"queuedAt"`
}

// connection is the part of *amqp.Connection the publisher uses.
type connection interface {
	Channel() (*amqp.Channel, error)
	IsClosed() bool
	Close() error
}

func dialBroker(url string) (connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Publisher implements ports.Notifier with a durable queue and publisher
// confirms. A nack or a missing ack is reported as a failed send. A dropped
// broker connection is redialled on the next send.
type Publisher struct {
	url    string
	queue  string
	logger *slog.Logger
	dial   func(url string) (connection, error)

	mu       sync.Mutex
	conn     connection
	ch       *amqp.Channel
	confirms <-chan amqp.Confirmation
}

func Dial(url, queue string, logger *slog.Logger) (*Publisher, error) {
	if queue == "" {
		return nil, errs.NewValueIsRequiredError("sms queue")
	}

	p := &Publisher{
		url:    url,
		queue:  queue,
		logger: logger.With("component", "sms-publisher"),
		dial:   dialBroker,
	}

	conn, err := p.dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	p.conn = conn
	if err := p.openChannel(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

// ensureChannel redials a closed connection and reopens the channel. The
// caller holds p.mu.
func (p *Publisher) ensureChannel(ctx context.Context) error {
	if p.conn == nil || p.conn.IsClosed() {
		p.ch = nil
		conn, err := p.dial(p.url)
		if err != nil {
			return fmt.Errorf("redial rabbitmq: %w", err)
		}
		p.conn = conn
		p.logger.InfoContext(ctx, "Reconnected to rabbitmq")
	}
	if p.ch == nil {
		return p.openChannel()
	}
	return nil
}

func (p *Publisher) openChannel() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return fmt.Errorf("enable confirm: %w", err)
	}

	p.ch = ch
	p.confirms = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	return nil
}

// Send publishes msg and waits for the broker ack. Sends are serialized so
// each ack belongs to the message just published.
func (p *Publisher) Send(ctx context.Context, msg sms.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(payload{OrderID: msg.OrderID, To: msg.Phone, Text: msg.Text, QueuedAt: time.Now()})
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(ctx); err != nil {
		return err
	}

	err = p.ch.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		p.ch = nil
		return fmt.Errorf("publish: %w", err)
	}

	wait, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	select {
	case c, ok := <-p.confirms:
		if !ok {
			p.ch = nil
			return fmt.Errorf("channel closed before confirm")
		}
		if !c.Ack {
			return fmt.Errorf("broker refused message %d", c.DeliveryTag)
		}
		p.logger.DebugContext(ctx, "sms queued", "orderId", msg.OrderID)
		return nil
	case <-wait.Done():
		// A late ack must never be matched to the next message.
		_ = p.ch.Close()
		p.ch = nil
		return fmt.Errorf("waiting for confirm: %w", wait.Err())
	}
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}
