package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvalerio/crm-backend/internal/entity"
)

type CreateCommentUseCase struct {
	Comments CommentRepository
	Leads    LeadRepository
	Agents   AgentRepository
}

func NewCreateCommentUseCase(comments CommentRepository, leads LeadRepository, agents AgentRepository) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		Comments: comments,
		Leads:    leads,
		Agents:   agents,
	}
}

// Execute creates a comment under leadID. Both the lead and the author must
// exist before anything is written; the returned comment keeps raw reference
// ids, unresolved.
func (uc *CreateCommentUseCase) Execute(ctx context.Context, leadID string, input CommentInput) (*entity.Comment, error) {
	if errs := ValidateCommentInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	if _, err := uc.Leads.FindByID(ctx, leadID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &NotFoundError{Entity: "lead", ID: leadID}
		}
		return nil, fmt.Errorf("looking up lead: %w", err)
	}

	if _, err := uc.Agents.FindByID(ctx, input.Author); err != nil {
		if errors.Is(err, entity.ErrAgentNotFound) {
			return nil, &NotFoundError{Entity: "sales agent", ID: input.Author}
		}
		return nil, fmt.Errorf("looking up author: %w", err)
	}

	comment := entity.NewComment(leadID, input.CommentText, input.Author)

	if err := uc.Comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("persisting comment: %w", err)
	}

	return comment, nil
}
