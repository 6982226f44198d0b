package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a note attached to a Lead. Deleting the Lead does not cascade,
// so a comment can outlive its lead and dangle.
type Comment struct {
	ID          string    `json:"id"`
	Lead        string    `json:"lead"`
	CommentText string    `json:"commentText"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PopulatedComment carries the full author record instead of its id. Used by
// the by-lead comment listing.
type PopulatedComment struct {
	ID          string     `json:"id"`
	Lead        string     `json:"lead"`
	CommentText string     `json:"commentText"`
	Author      SalesAgent `json:"author"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewComment(lead, commentText, author string) *Comment {
	return &Comment{
		ID:          uuid.NewString(),
		Lead:        lead,
		CommentText: commentText,
		Author:      author,
		CreatedAt:   time.Now().UTC(),
	}
}

func (c *Comment) Populate(author SalesAgent) *PopulatedComment {
	return &PopulatedComment{
		ID:          c.ID,
		Lead:        c.Lead,
		CommentText: c.CommentText,
		Author:      author,
		CreatedAt:   c.CreatedAt,
	}
}
