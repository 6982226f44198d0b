package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalerio/crm-backend/internal/entity"
)

func TestNewLeadStampsClosedAtWhenCreatedClosed(t *testing.T) {
	lead := entity.NewLead("Acme", "Website", "agent-1", entity.StatusClosed, 10, "High", []string{"a"})

	require.NotNil(t, lead.ClosedAt)
	assert.WithinDuration(t, time.Now().UTC(), *lead.ClosedAt, time.Second)
}

func TestNewLeadLeavesClosedAtNilWhenOpen(t *testing.T) {
	lead := entity.NewLead("Acme", "Website", "agent-1", "New", 10, "High", []string{"a"})

	assert.Nil(t, lead.ClosedAt)
}

func TestApplyReplacementStampsClosedAtOnTransition(t *testing.T) {
	lead := entity.NewLead("Acme", "Website", "agent-1", "New", 10, "High", []string{"a"})

	lead.ApplyReplacement("Acme", "Website", "agent-1", entity.StatusClosed, 10, "High", []string{"a"})

	require.NotNil(t, lead.ClosedAt)
	assert.True(t, lead.IsClosed())
}

func TestApplyReplacementKeepsOriginalClosedAt(t *testing.T) {
	lead := entity.NewLead("Acme", "Website", "agent-1", entity.StatusClosed, 10, "High", []string{"a"})
	original := *lead.ClosedAt

	lead.ApplyReplacement("Acme", "Referral", "agent-1", entity.StatusClosed, 5, "Low", []string{"b"})

	require.NotNil(t, lead.ClosedAt)
	assert.Equal(t, original, *lead.ClosedAt)
}

func TestApplyReplacementClearsClosedAtWhenReopened(t *testing.T) {
	lead := entity.NewLead("Acme", "Website", "agent-1", entity.StatusClosed, 10, "High", []string{"a"})

	lead.ApplyReplacement("Acme", "Website", "agent-1", "Contacted", 10, "High", []string{"a"})

	assert.Nil(t, lead.ClosedAt)
	assert.False(t, lead.IsClosed())
}

func TestPopulateSubstitutesAgentRecord(t *testing.T) {
	agent := entity.SalesAgent{ID: "agent-1", Name: "Ana", Email: "ana@example.com"}
	lead := entity.NewLead("Acme", "Website", "agent-1", "New", 10, "High", []string{"a"})

	populated := lead.Populate(agent)

	assert.Equal(t, lead.ID, populated.ID)
	assert.Equal(t, agent, populated.SalesAgent)
	assert.Equal(t, lead.Tags, populated.Tags)
}
