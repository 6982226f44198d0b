package usecase

import (
	"context"
	"fmt"

	"github.com/mvalerio/crm-backend/internal/entity"
)

type CommentQueries struct {
	Comments CommentRepository
	Agents   AgentRepository
}

func NewCommentQueries(comments CommentRepository, agents AgentRepository) *CommentQueries {
	return &CommentQueries{Comments: comments, Agents: agents}
}

// ListByLead returns every comment under leadID with the author resolved.
// The lead itself is deliberately not checked: an unknown id yields an empty
// set, unlike comment creation which validates the lead first.
func (q *CommentQueries) ListByLead(ctx context.Context, leadID string) ([]entity.PopulatedComment, error) {
	comments, err := q.Comments.FindByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	cache := make(map[string]*entity.SalesAgent)

	out := make([]entity.PopulatedComment, 0, len(comments))
	for i := range comments {
		author, ok := cache[comments[i].Author]
		if !ok {
			author, err = q.Agents.FindByID(ctx, comments[i].Author)
			if err != nil {
				return nil, fmt.Errorf("resolving author %s: %w", comments[i].Author, err)
			}
			cache[comments[i].Author] = author
		}
		out = append(out, *comments[i].Populate(*author))
	}

	return out, nil
}
