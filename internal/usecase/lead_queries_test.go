package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalerio/crm-backend/internal/entity"
	"github.com/mvalerio/crm-backend/internal/usecase"
)

func TestListLeadsResolvesAndMemoizesAgents(t *testing.T) {
	ctx := context.Background()

	agent := &entity.SalesAgent{ID: "agent-1", Name: "Ana", Email: "ana@example.com"}
	leads := []entity.Lead{
		*existingLead("lead-1", "agent-1"),
		*existingLead("lead-2", "agent-1"),
	}

	mockLeads := new(MockLeadRepository)
	mockAgents := new(MockAgentRepository)
	mockLeads.On("Find", ctx, usecase.LeadFilter{}).Return(leads, nil)
	mockAgents.On("FindByID", ctx, "agent-1").Return(agent, nil)

	q := usecase.NewLeadQueries(mockLeads, mockAgents)

	out, err := q.List(ctx, usecase.LeadFilter{})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, *agent, out[0].SalesAgent)
	assert.Equal(t, *agent, out[1].SalesAgent)
	// Two leads sharing one agent means a single lookup.
	mockAgents.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestListLeadsPassesFilterThrough(t *testing.T) {
	ctx := context.Background()

	filter := usecase.LeadFilter{Status: entity.StatusClosed}

	mockLeads := new(MockLeadRepository)
	mockAgents := new(MockAgentRepository)
	mockLeads.On("Find", ctx, filter).Return([]entity.Lead{}, nil)

	q := usecase.NewLeadQueries(mockLeads, mockAgents)

	out, err := q.List(ctx, filter)

	require.NoError(t, err)
	assert.Empty(t, out)
	mockLeads.AssertExpectations(t)
}

func TestGetLeadNotFoundPassesThrough(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockAgents := new(MockAgentRepository)
	mockLeads.On("FindByID", ctx, "ghost").Return(nil, entity.ErrLeadNotFound)

	q := usecase.NewLeadQueries(mockLeads, mockAgents)

	out, err := q.Get(ctx, "ghost")

	require.ErrorIs(t, err, entity.ErrLeadNotFound)
	assert.Nil(t, out)
}

func TestGetLeadResolvesAgent(t *testing.T) {
	ctx := context.Background()

	agent := &entity.SalesAgent{ID: "agent-1", Name: "Ana", Email: "ana@example.com"}

	mockLeads := new(MockLeadRepository)
	mockAgents := new(MockAgentRepository)
	mockLeads.On("FindByID", ctx, "lead-1").Return(existingLead("lead-1", "agent-1"), nil)
	mockAgents.On("FindByID", ctx, "agent-1").Return(agent, nil)

	q := usecase.NewLeadQueries(mockLeads, mockAgents)

	out, err := q.Get(ctx, "lead-1")

	require.NoError(t, err)
	assert.Equal(t, *agent, out.SalesAgent)
}
