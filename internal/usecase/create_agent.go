package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvalerio/crm-backend/internal/entity"
)

type CreateAgentUseCase struct {
	Agents AgentRepository
}

func NewCreateAgentUseCase(agents AgentRepository) *CreateAgentUseCase {
	return &CreateAgentUseCase{Agents: agents}
}

func (uc *CreateAgentUseCase) Execute(ctx context.Context, input AgentInput) (*entity.SalesAgent, error) {
	if errs := ValidateAgentInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	// Uniqueness is a pre-check, not a storage constraint.
	existing, err := uc.Agents.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, entity.ErrAgentNotFound) {
		return nil, fmt.Errorf("checking agent email: %w", err)
	}
	if existing != nil {
		return nil, &ConflictError{Message: fmt.Sprintf("sales agent with email '%s' already exists", input.Email)}
	}

	agent := entity.NewSalesAgent(input.Name, input.Email)

	if err := uc.Agents.Create(ctx, agent); err != nil {
		return nil, fmt.Errorf("persisting sales agent: %w", err)
	}

	return agent, nil
}
