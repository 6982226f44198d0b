package usecase

import (
	"context"
	"fmt"

	"github.com/mvalerio/crm-backend/internal/entity"
)

// LeadQueries is the read side for leads: filtered listing and by-id reads,
// both returning leads with the salesAgent reference resolved.
type LeadQueries struct {
	Leads  LeadRepository
	Agents AgentRepository
}

func NewLeadQueries(leads LeadRepository, agents AgentRepository) *LeadQueries {
	return &LeadQueries{Leads: leads, Agents: agents}
}

func (q *LeadQueries) List(ctx context.Context, filter LeadFilter) ([]entity.PopulatedLead, error) {
	leads, err := q.Leads.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	return populateLeads(ctx, q.Agents, leads)
}

func (q *LeadQueries) Get(ctx context.Context, id string) (*entity.PopulatedLead, error) {
	lead, err := q.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	agent, err := q.Agents.FindByID(ctx, lead.SalesAgent)
	if err != nil {
		return nil, fmt.Errorf("resolving sales agent %s: %w", lead.SalesAgent, err)
	}

	return lead.Populate(*agent), nil
}

// populateLeads performs the explicit join step: each lead's agent is fetched
// by id and substituted into the output. Lookups are memoized per call since
// many leads usually share one agent.
func populateLeads(ctx context.Context, agents AgentRepository, leads []entity.Lead) ([]entity.PopulatedLead, error) {
	cache := make(map[string]*entity.SalesAgent)

	out := make([]entity.PopulatedLead, 0, len(leads))
	for i := range leads {
		agent, ok := cache[leads[i].SalesAgent]
		if !ok {
			var err error
			agent, err = agents.FindByID(ctx, leads[i].SalesAgent)
			if err != nil {
				return nil, fmt.Errorf("resolving sales agent %s: %w", leads[i].SalesAgent, err)
			}
			cache[leads[i].SalesAgent] = agent
		}
		out = append(out, *leads[i].Populate(*agent))
	}

	return out, nil
}
