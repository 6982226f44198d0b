package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mvalerio/crm-backend/internal/entity"
)

// LeadClosedPayload is published whenever a lead enters "Closed" status. It
// carries everything the notification worker needs so the worker never has
// to reach back into the store.
type LeadClosedPayload struct {
	LeadID     string    `json:"lead_id"`
	LeadName   string    `json:"lead_name"`
	AgentID    string    `json:"agent_id"`
	AgentName  string    `json:"agent_name"`
	AgentEmail string    `json:"agent_email"`
	ClosedAt   time.Time `json:"closed_at"`
}

func NewLeadClosedPayload(lead *entity.Lead, agent *entity.SalesAgent) LeadClosedPayload {
	payload := LeadClosedPayload{
		LeadID:     lead.ID,
		LeadName:   lead.Name,
		AgentID:    agent.ID,
		AgentName:  agent.Name,
		AgentEmail: agent.Email,
	}
	if lead.ClosedAt != nil {
		payload.ClosedAt = *lead.ClosedAt
	}
	return payload
}

type Producer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) PublishLeadClosed(ctx context.Context, payload LeadClosedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing to RabbitMQ: %w", err)
	}

	return nil
}
