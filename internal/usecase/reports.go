package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvalerio/crm-backend/internal/entity"
)

const lastWeekWindow = 7 * 24 * time.Hour

// ClosedByAgentRow is one line of the closed-by-agent report: the agent's
// display name in place of the reference, and their closed-lead count.
type ClosedByAgentRow struct {
	SalesAgent string `json:"salesAgent"`
	Count      int64  `json:"count"`
}

// ReportQueries computes the read-only aggregates. Each call is a pure
// function of current store state; nothing is cached between calls.
type ReportQueries struct {
	Reports ReportRepository
	Agents  AgentRepository
}

func NewReportQueries(reports ReportRepository, agents AgentRepository) *ReportQueries {
	return &ReportQueries{Reports: reports, Agents: agents}
}

// ClosedLastWeek returns leads closed within the last seven days, agent
// resolved. The window's lower bound is inclusive and there is no upper
// bound, so clock skew into the future is not guarded against.
func (q *ReportQueries) ClosedLastWeek(ctx context.Context) ([]entity.PopulatedLead, error) {
	cutoff := time.Now().UTC().Add(-lastWeekWindow)

	leads, err := q.Reports.ClosedSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("querying closed leads: %w", err)
	}

	return populateLeads(ctx, q.Agents, leads)
}

// Pipeline counts every lead whose status is not "Closed".
func (q *ReportQueries) Pipeline(ctx context.Context) (int64, error) {
	count, err := q.Reports.PipelineCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting pipeline leads: %w", err)
	}
	return count, nil
}

// ClosedByAgent returns one row per agent with at least one closed lead;
// agents with none are omitted. Rows arrive from the store sorted by the
// grouping key, which keeps output order deterministic within a run.
func (q *ReportQueries) ClosedByAgent(ctx context.Context) ([]ClosedByAgentRow, error) {
	counts, err := q.Reports.ClosedCountByAgent(ctx)
	if err != nil {
		return nil, fmt.Errorf("grouping closed leads: %w", err)
	}

	rows := make([]ClosedByAgentRow, 0, len(counts))
	for _, c := range counts {
		name := c.AgentID
		agent, err := q.Agents.FindByID(ctx, c.AgentID)
		switch {
		case err == nil:
			name = agent.Name
		case !errors.Is(err, entity.ErrAgentNotFound):
			return nil, fmt.Errorf("resolving sales agent %s: %w", c.AgentID, err)
		}
		// Agents are never deleted; an unresolvable reference keeps the raw
		// id rather than dropping the row.
		rows = append(rows, ClosedByAgentRow{SalesAgent: name, Count: c.Count})
	}

	return rows, nil
}
