package queue

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hexstaking/hex-staking-indexer/internal/config"
)

const (
	queueTypeArg = "x-queue-type"
	contentType  = "application/json"
)

// QueueClient publishes raw messages to a single queue.
type QueueClient interface {
	SendMessage(ctx context.Context, messageBody string) error
	Ping(ctx context.Context) error
	Stop() error
}

type RabbitMqClient struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	cfg        *config.QueueConfig
}

func NewQueueClient(cfg *config.QueueConfig, queueName string) (*RabbitMqClient, error) {
	conn, err := amqp.Dial(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		amqp.Table{queueTypeArg: cfg.QueueType},
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return &RabbitMqClient{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
		cfg:        cfg,
	}, nil
}

func (c *RabbitMqClient) SendMessage(ctx context.Context, messageBody string) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.QueueProcessingTimeout)
	defer cancel()

	return c.channel.PublishWithContext(ctx,
		"",          // default exchange routes by queue name
		c.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  contentType,
			Body:         []byte(messageBody),
		},
	)
}

func (c *RabbitMqClient) Ping(ctx context.Context) error {
	if c.connection.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	if c.channel.IsClosed() {
		return errors.New("rabbitmq channel is closed")
	}
	return nil
}

func (c *RabbitMqClient) Stop() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.connection.Close()
}
