package queue

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"
)

// RecomputeEvent asks the worker to re-derive every campaign row of one
// client. Published when that client's catalog or rate table changed.
type RecomputeEvent struct {
	Client string `json:"client"`
}

// Queue is a thin wrapper over one AMQP connection and channel bound to a
// single durable queue. It carries recompute events between the server and
// the worker.
type Queue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	name string
}

// Dial connects to the broker and declares the durable queue. The caller
// must Close the returned Queue.
func Dial(url, name string) (*Queue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if _, err = ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", name, err)
	}
	return &Queue{conn: conn, ch: ch, name: name}, nil
}

// Close releases the channel and connection.
func (q *Queue) Close() {
	_ = q.ch.Close()
	_ = q.conn.Close()
}

// Publish enqueues a persistent recompute event.
func (q *Queue) Publish(ev RecomputeEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	err = q.ch.Publish("", q.name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Consume delivers events to the handler until the channel closes. Events
// the handler rejects are requeued once; malformed payloads are dropped.
func (q *Queue) Consume(logger *slog.Logger, handler func(RecomputeEvent) error) error {
	msgs, err := q.ch.Consume(q.name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume queue %s: %w", q.name, err)
	}
	for msg := range msgs {
		var ev RecomputeEvent
		if err := json.Unmarshal(msg.Body, &ev); err != nil {
			logger.Error("malformed event dropped", slog.Any("error", err))
			_ = msg.Nack(false, false)
			continue
		}
		if err := handler(ev); err != nil {
			logger.Error("event handler failed", slog.String("client", ev.Client), slog.Any("error", err))
			_ = msg.Nack(false, !msg.Redelivered)
			continue
		}
		_ = msg.Ack(false)
	}
	return nil
}
