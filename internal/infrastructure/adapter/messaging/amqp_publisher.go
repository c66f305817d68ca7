package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/notification"
)

const publishTimeout = 5 * time.Second

// AMQPPublisher forwards transaction events to a durable topic exchange
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   coreport.Logger

	mutex sync.Mutex
}

var _ notification.EventPublisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials the broker and declares the exchange
func NewAMQPPublisher(url, exchange string, logger coreport.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel, exchange: exchange, logger: logger}, nil
}

// RoutingKey is user.<id>.<kind>, so consumers can bind per user or per kind
func RoutingKey(ev entity.TransactionEvent) string {
	return fmt.Sprintf("user.%d.%s", ev.UserID, ev.Kind)
}

func newPublishing(ev entity.TransactionEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(NewEventMessage(ev))
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID.String(),
		Type:         string(ev.Kind),
		Timestamp:    ev.OccurredAt,
		Body:         body,
	}, nil
}

// Publish sends ev to the exchange
func (p *AMQPPublisher) Publish(ctx context.Context, ev entity.TransactionEvent) error {
	msg, err := newPublishing(ev)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mutex.Lock()
	err = p.channel.PublishWithContext(ctx, p.exchange, RoutingKey(ev), false, false, msg)
	p.mutex.Unlock()
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	p.logger.Debug("Published transaction event", map[string]any{
		"exchange": p.exchange,
		"user_id":  ev.UserID,
		"event":    string(ev.Kind),
	})
	return nil
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
