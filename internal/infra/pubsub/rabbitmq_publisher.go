package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"furnishop/config"
	"furnishop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultRabbitMQQueue = "furnishop.orders"

// rabbitMQPublisher implements EventPublisher on a single AMQP channel.
// amqp channels are not safe for concurrent publishing, hence the mutex.
type rabbitMQPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the order event queue
func NewRabbitMQPublisher(cfg config.RabbitMQConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	queue := strings.TrimSpace(cfg.Queue)
	if queue == "" {
		queue = defaultRabbitMQQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(queue, cfg.QueueDurable, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "declare queue %s", queue)
	}

	return &rabbitMQPublisher{
		conn:    conn,
		channel: ch,
		queue:   queue,
		logger:  logger,
	}, nil
}

// PublishOrderEvent sends the JSON event to the queue through the default exchange
func (p *rabbitMQPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for key, value := range eventAttributes(event) {
		headers[key] = value
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:   "application/json",
		MessageId:     uuid.NewString(),
		CorrelationId: event.RequestID,
		Timestamp:     event.OccurredAt,
		Headers:       headers,
		Body:          data,
	})
	if err != nil {
		return errors.Wrap(err, "publish order event")
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("type", event.Type),
		slog.Int64("order_id", event.OrderID),
	)

	return nil
}

// Close closes the channel and the connection
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
