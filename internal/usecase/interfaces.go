package usecase

import (
	"context"
	"time"

	"github.com/mvalerio/crm-backend/internal/entity"
	"github.com/mvalerio/crm-backend/internal/infra/queue"
)

// LeadInput is the body of both lead creation and lead replacement. Every
// field is mandatory; updates resupply the full set.
type LeadInput struct {
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	SalesAgent  string   `json:"salesAgent"`
	Status      string   `json:"status"`
	TimeToClose *int     `json:"timeToClose"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
}

type AgentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CommentInput carries the body fields only; the parent lead id comes from
// the request path.
type CommentInput struct {
	CommentText string `json:"commentText"`
	Author      string `json:"author"`
}

// LeadFilter is a conjunction of equality predicates. Empty fields impose no
// constraint.
type LeadFilter struct {
	SalesAgent string
	Status     string
	Source     string
}

// AgentClosedCount is a raw grouping row from the store, keyed by the agent
// reference. The reporting layer resolves the id to a display name.
type AgentClosedCount struct {
	AgentID string
	Count   int64
}

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	Find(ctx context.Context, filter LeadFilter) ([]entity.Lead, error)
	Replace(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
}

type AgentRepository interface {
	Create(ctx context.Context, agent *entity.SalesAgent) error
	FindByID(ctx context.Context, id string) (*entity.SalesAgent, error)
	FindByEmail(ctx context.Context, email string) (*entity.SalesAgent, error)
	FindAll(ctx context.Context) ([]entity.SalesAgent, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByLead(ctx context.Context, leadID string) ([]entity.Comment, error)
}

type ReportRepository interface {
	ClosedSince(ctx context.Context, cutoff time.Time) ([]entity.Lead, error)
	PipelineCount(ctx context.Context) (int64, error)
	ClosedCountByAgent(ctx context.Context) ([]AgentClosedCount, error)
}

type LeadEventPublisher interface {
	PublishLeadClosed(ctx context.Context, payload queue.LeadClosedPayload) error
}
