package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead not found")

// StatusClosed is the terminal pipeline status. Leads in any other status
// count toward the pipeline report.
const StatusClosed = "Closed"

type Lead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Source      string     `json:"source"`
	SalesAgent  string     `json:"salesAgent"`
	Status      string     `json:"status"`
	TimeToClose int        `json:"timeToClose"`
	Priority    string     `json:"priority"`
	Tags        []string   `json:"tags"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PopulatedLead is a Lead with the salesAgent reference resolved to the
// full agent record. This is the shape every lead read returns.
type PopulatedLead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Source      string     `json:"source"`
	SalesAgent  SalesAgent `json:"salesAgent"`
	Status      string     `json:"status"`
	TimeToClose int        `json:"timeToClose"`
	Priority    string     `json:"priority"`
	Tags        []string   `json:"tags"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewLead(name, source, salesAgent, status string, timeToClose int, priority string, tags []string) *Lead {
	now := time.Now().UTC()

	lead := &Lead{
		ID:          uuid.NewString(),
		Name:        name,
		Source:      source,
		SalesAgent:  salesAgent,
		Status:      status,
		TimeToClose: timeToClose,
		Priority:    priority,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	lead.stampClosedAt(now)

	return lead
}

// ApplyReplacement overwrites every mutable field. Updates are full
// replacements, never patches.
func (l *Lead) ApplyReplacement(name, source, salesAgent, status string, timeToClose int, priority string, tags []string) {
	now := time.Now().UTC()

	l.Name = name
	l.Source = source
	l.SalesAgent = salesAgent
	l.Status = status
	l.TimeToClose = timeToClose
	l.Priority = priority
	l.Tags = tags
	l.UpdatedAt = now
	if status != StatusClosed {
		l.ClosedAt = nil
		return
	}
	l.stampClosedAt(now)
}

func (l *Lead) stampClosedAt(now time.Time) {
	if l.Status == StatusClosed && l.ClosedAt == nil {
		l.ClosedAt = &now
	}
}

func (l *Lead) IsClosed() bool {
	return l.Status == StatusClosed
}

func (l *Lead) Populate(agent SalesAgent) *PopulatedLead {
	return &PopulatedLead{
		ID:          l.ID,
		Name:        l.Name,
		Source:      l.Source,
		SalesAgent:  agent,
		Status:      l.Status,
		TimeToClose: l.TimeToClose,
		Priority:    l.Priority,
		Tags:        l.Tags,
		ClosedAt:    l.ClosedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
