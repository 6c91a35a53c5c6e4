package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/anvaya-crm/leaddesk/internal/metrics"
	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

// NotificationSender is the worker's downstream, usually SMTP.
type NotificationSender interface {
	SendLeadClosed(event usecase.LeadClosedEvent) error
}

// Worker consumes lead-closed events and notifies the owning agent. It is
// fully decoupled from the database: everything it needs rides in the event.
type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
}

func NewWorker(ch *amqp.Channel, sender NotificationSender) *Worker {
	return &Worker{Channel: ch, Sender: sender}
}

// Start blocks consuming the queue; run it on its own goroutine.
func (w *Worker) Start(queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	log.Printf("worker consuming %q", queueName)

	for d := range msgs {
		var event usecase.LeadClosedEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			log.Printf("worker: malformed event: %v", err)
			// Malformed body can never succeed; reject without requeue so it
			// lands in the DLQ.
			d.Nack(false, false)
			continue
		}

		if err := w.process(event); err != nil {
			log.Printf("worker: notify agent for lead %s: %v", event.LeadID, err)
			metrics.RecordNotificationError("mail")
			d.Nack(false, false)
			continue
		}

		d.Ack(false)
	}

	return nil
}

func (w *Worker) process(event usecase.LeadClosedEvent) error {
	if w.Sender == nil || event.AgentEmail == "" {
		return nil
	}
	return w.Sender.SendLeadClosed(event)
}
