package rabbitmq

import "github.com/streadway/amqp"

// Exchanges the analytics service publishes to.
const (
	UserRegisteredExchange  = "user.registered"
	SessionRecordedExchange = "session.recorded"
)

// Publisher defines the interface for publishing messages to RabbitMQ.
type Publisher interface {
	Publish(exchange string, body []byte) error
}

// AMQPPublisher publishes analytics events as JSON to fanout exchanges.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher connects to RabbitMQ and declares the analytics
// exchanges so consumers can bind before the first event arrives.
func NewAMQPPublisher(amqpURL string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	for _, exchange := range []string{UserRegisteredExchange, SessionRecordedExchange} {
		if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	return &AMQPPublisher{conn: conn, channel: ch}, nil
}

// Publish publishes a JSON message to the given exchange.
func (p *AMQPPublisher) Publish(exchange string, body []byte) error {
	return p.channel.Publish(
		exchange,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Close closes the RabbitMQ connection and channel.
func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
