package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

const (
	EngagementEventExchange = "engagement_events"
	EngagementEventQueue    = "engagement_event_queue"
)

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func (p *Producer) setupTopology() error {
	err := p.channel.ExchangeDeclare(
		EngagementEventExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare engagement event exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		EngagementEventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare engagement event queue: %w", err)
	}

	err = p.channel.QueueBind(
		EngagementEventQueue,
		"",
		EngagementEventExchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind engagement event queue: %w", err)
	}

	return nil
}

// PublishEngagementEvent is safe on a nil producer so the catalog works
// without a broker configured.
func (p *Producer) PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error {
	if p == nil {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal engagement event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		EngagementEventExchange,
		"",
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish engagement event: %w", err)
	}

	hlog.CtxInfof(ctx, "Published engagement event: %+v", event)
	return nil
}

func (p *Producer) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
