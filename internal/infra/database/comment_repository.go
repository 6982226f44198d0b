package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mvalerio/crm-backend/internal/entity"
)

type commentDoc struct {
	ID          string    `bson:"_id"`
	Lead        string    `bson:"lead_id"`
	CommentText string    `bson:"comment_text"`
	Author      string    `bson:"author_id"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d commentDoc) toEntity() entity.Comment {
	return entity.Comment{
		ID:          d.ID,
		Lead:        d.Lead,
		CommentText: d.CommentText,
		Author:      d.Author,
		CreatedAt:   d.CreatedAt,
	}
}

type CommentRepository struct {
	DB *mongo.Database
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) comments() *mongo.Collection {
	return r.DB.Collection(commentsCollection)
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	doc := commentDoc{
		ID:          comment.ID,
		Lead:        comment.Lead,
		CommentText: comment.CommentText,
		Author:      comment.Author,
		CreatedAt:   comment.CreatedAt,
	}
	if _, err := r.comments().InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}
	return nil
}

// FindByLead never checks whether the lead exists; an unknown id is just an
// empty result.
func (r *CommentRepository) FindByLead(ctx context.Context, leadID string) ([]entity.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.comments().Find(ctx, bson.M{"lead_id": leadID}, opts)
	if err != nil {
		return nil, fmt.Errorf("finding comments: %w", err)
	}

	var docs []commentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding comments: %w", err)
	}

	comments := make([]entity.Comment, len(docs))
	for i, d := range docs {
		comments[i] = d.toEntity()
	}
	return comments, nil
}
