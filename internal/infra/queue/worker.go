package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// LeadClosedNotifier delivers the closed-lead notification to the assigned
// agent. The mail sender implements it.
type LeadClosedNotifier interface {
	SendLeadClosed(payload LeadClosedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadClosedNotifier
	Log      *zap.SugaredLogger
}

func NewWorker(ch *amqp.Channel, notifier LeadClosedNotifier, log *zap.SugaredLogger) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		Log:      log,
	}
}

// Start consumes queueName until the channel closes. Malformed messages are
// rejected without requeue so they land in the DLQ instead of wedging the
// queue; delivery failures are rejected the same way.
func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Log.Fatalw("registering RabbitMQ consumer", "queue", queueName, "error", err)
	}

	w.Log.Infow("worker waiting for messages", "queue", queueName)

	for d := range msgs {
		var payload LeadClosedPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			w.Log.Errorw("invalid message payload", "error", err)
			d.Nack(false, false)
			continue
		}

		if err := w.Notifier.SendLeadClosed(payload); err != nil {
			w.Log.Errorw("notifying agent", "lead", payload.LeadID, "agent", payload.AgentEmail, "error", err)
			d.Nack(false, false)
			continue
		}

		w.Log.Infow("agent notified", "lead", payload.LeadID, "agent", payload.AgentEmail)
		d.Ack(false)
	}
}
