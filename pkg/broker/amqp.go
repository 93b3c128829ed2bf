package broker

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/streadway/amqp"

	"github.com/SurajNaik1502/TPC/pkg/logger"
)

// Publisher pushes chat events to an external message broker so that
// integrations outside the live WebSocket fan-out can consume them.
type Publisher interface {
	Publish(routingKey string, payload interface{}) error
	Close() error
}

// AMQPPublisher publishes events to a RabbitMQ topic exchange
type AMQPPublisher struct {
	conn     *amqp.Connection
	exchange string
	log      logger.Logger
}

// NewAMQPPublisherFromEnv connects to the broker configured by
// RABBITMQ_URL. When the variable is unset the bridge is disabled and
// (nil, nil) is returned; callers must treat a nil publisher as a no-op.
func NewAMQPPublisherFromEnv(log logger.Logger) (*AMQPPublisher, error) {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		return nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	exchange := os.Getenv("CHAT_EVENTS_EXCHANGE")
	if exchange == "" {
		exchange = "chat_events"
	}

	return &AMQPPublisher{
		conn:     conn,
		exchange: exchange,
		log:      log,
	}, nil
}

// Publish sends a JSON-encoded payload to the exchange. A channel is
// opened per publish; the underlying connection is shared.
func (p *AMQPPublisher) Publish(routingKey string, payload interface{}) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening AMQP channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("error declaring exchange: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding event payload: %w", err)
	}

	return ch.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Close closes the broker connection
func (p *AMQPPublisher) Close() error {
	return p.conn.Close()
}
