package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mvalerio/crm-backend/internal/entity"
	"github.com/mvalerio/crm-backend/internal/infra/queue"
)

type UpdateLeadUseCase struct {
	Leads  LeadRepository
	Agents AgentRepository
	Events LeadEventPublisher
	Log    *zap.SugaredLogger
}

func NewUpdateLeadUseCase(leads LeadRepository, agents AgentRepository, events LeadEventPublisher, log *zap.SugaredLogger) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		Leads:  leads,
		Agents: agents,
		Events: events,
		Log:    log,
	}
}

// Execute fully replaces the lead identified by id. A missing target is not
// an error: it returns (nil, nil) and the caller serializes a null body.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input LeadInput) (*entity.PopulatedLead, error) {
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	agent, err := uc.Agents.FindByID(ctx, input.SalesAgent)
	if err != nil {
		if errors.Is(err, entity.ErrAgentNotFound) {
			return nil, &NotFoundError{Entity: "sales agent", ID: input.SalesAgent}
		}
		return nil, fmt.Errorf("looking up sales agent: %w", err)
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("looking up lead: %w", err)
	}

	wasClosed := lead.IsClosed()
	lead.ApplyReplacement(
		input.Name,
		input.Source,
		input.SalesAgent,
		input.Status,
		*input.TimeToClose,
		input.Priority,
		input.Tags,
	)

	if err := uc.Leads.Replace(ctx, lead); err != nil {
		return nil, fmt.Errorf("replacing lead: %w", err)
	}

	if !wasClosed && lead.IsClosed() {
		uc.notifyClosed(ctx, lead, agent)
	}

	return lead.Populate(*agent), nil
}

func (uc *UpdateLeadUseCase) notifyClosed(ctx context.Context, lead *entity.Lead, agent *entity.SalesAgent) {
	if uc.Events == nil {
		return
	}
	payload := queue.NewLeadClosedPayload(lead, agent)
	if err := uc.Events.PublishLeadClosed(ctx, payload); err != nil && uc.Log != nil {
		uc.Log.Errorw("publish lead closed", "lead", lead.ID, "error", err)
	}
}
