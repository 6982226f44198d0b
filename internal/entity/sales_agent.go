package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAgentNotFound = errors.New("sales agent not found")

// SalesAgent is read-only after creation: no update or delete operation
// exists, so referencing records can rely on the id staying valid.
type SalesAgent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewSalesAgent(name, email string) *SalesAgent {
	return &SalesAgent{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}
