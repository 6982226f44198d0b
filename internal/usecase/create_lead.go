package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mvalerio/crm-backend/internal/entity"
	"github.com/mvalerio/crm-backend/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Leads  LeadRepository
	Agents AgentRepository
	Events LeadEventPublisher
	Log    *zap.SugaredLogger
}

func NewCreateLeadUseCase(leads LeadRepository, agents AgentRepository, events LeadEventPublisher, log *zap.SugaredLogger) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Leads:  leads,
		Agents: agents,
		Events: events,
		Log:    log,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input LeadInput) (*entity.PopulatedLead, error) {
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

	lead := entity.NewLead(
		input.Name,
		input.Source,
		input.SalesAgent,
		input.Status,
		*input.TimeToClose,
		input.Priority,
		input.Tags,
	)

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("persisting lead: %w", err)
	}

	if lead.IsClosed() {
		uc.notifyClosed(ctx, lead, agent)
	}

	return lead.Populate(*agent), nil
}

// notifyClosed publishes the lead-closed event. The write already succeeded,
// so a publish failure is logged and swallowed.
func (uc *CreateLeadUseCase) notifyClosed(ctx context.Context, lead *entity.Lead, agent *entity.SalesAgent) {
	if uc.Events == nil {
		return
	}
	payload := queue.NewLeadClosedPayload(lead, agent)
	if err := uc.Events.PublishLeadClosed(ctx, payload); err != nil && uc.Log != nil {
		uc.Log.Errorw("publish lead closed", "lead", lead.ID, "error", err)
	}
}
