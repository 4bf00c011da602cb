// Package rabbitmq provides the queue-backed implementation of the shipment
// notifier. Each placed order announces its shipment by publishing the
// shipment identifier to a named queue; delivery is at-least-once and
// consumers own deduplication.
package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const connectAttempts = 5

// SetupConn dials RabbitMQ and opens a channel, retrying to tolerate broker
// container startup.
func SetupConn(url string) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error

	for i := 0; i < connectAttempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		slog.Warn("failed to connect to RabbitMQ",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	return conn, ch, nil
}

// ShipmentNotifier publishes shipment identifiers to a durable queue.
type ShipmentNotifier struct {
	ch        *amqp.Channel
	queueName string
}

// NewShipmentNotifier declares the queue and returns a notifier bound to it.
func NewShipmentNotifier(ch *amqp.Channel, queueName string) (*ShipmentNotifier, error) {
	_, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // auto-deleted
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("could not declare queue %s: %w", queueName, err)
	}

	return &ShipmentNotifier{
		ch:        ch,
		queueName: queueName,
	}, nil
}

// Publish enqueues the shipment id as a plain-text message and returns the
// delivery token assigned to it.
func (n *ShipmentNotifier) Publish(ctx context.Context, shipmentID string) (string, error) {
	token := uuid.NewString()

	err := n.ch.PublishWithContext(ctx,
		"",          // exchange
		n.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "text/plain",
			DeliveryMode: amqp.Persistent,
			MessageId:    token,
			Body:         []byte(shipmentID),
		},
	)
	if err != nil {
		return "", fmt.Errorf("could not publish shipment %s: %w", shipmentID, err)
	}

	return token, nil
}
