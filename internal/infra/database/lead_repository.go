package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mvalerio/crm-backend/internal/entity"
	"github.com/mvalerio/crm-backend/internal/usecase"
)

type leadDoc struct {
	ID          string     `bson:"_id"`
	Name        string     `bson:"name"`
	Source      string     `bson:"source"`
	SalesAgent  string     `bson:"sales_agent_id"`
	Status      string     `bson:"status"`
	TimeToClose int        `bson:"time_to_close"`
	Priority    string     `bson:"priority"`
	Tags        []string   `bson:"tags"`
	ClosedAt    *time.Time `bson:"closed_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

func toLeadDoc(l *entity.Lead) leadDoc {
	return leadDoc{
		ID:          l.ID,
		Name:        l.Name,
		Source:      l.Source,
		SalesAgent:  l.SalesAgent,
		Status:      l.Status,
		TimeToClose: l.TimeToClose,
		Priority:    l.Priority,
		Tags:        l.Tags,
		ClosedAt:    l.ClosedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (d leadDoc) toEntity() entity.Lead {
	return entity.Lead{
		ID:          d.ID,
		Name:        d.Name,
		Source:      d.Source,
		SalesAgent:  d.SalesAgent,
		Status:      d.Status,
		TimeToClose: d.TimeToClose,
		Priority:    d.Priority,
		Tags:        d.Tags,
		ClosedAt:    d.ClosedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type LeadRepository struct {
	DB *mongo.Database
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) leads() *mongo.Collection {
	return r.DB.Collection(leadsCollection)
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if _, err := r.leads().InsertOne(ctx, toLeadDoc(lead)); err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var doc leadDoc
	err := r.leads().FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("finding lead: %w", err)
	}

	lead := doc.toEntity()
	return &lead, nil
}

// Find applies the filter as an equality conjunction over only the supplied
// keys. An empty filter matches everything.
func (r *LeadRepository) Find(ctx context.Context, filter usecase.LeadFilter) ([]entity.Lead, error) {
	criteria := bson.M{}
	if filter.SalesAgent != "" {
		criteria["sales_agent_id"] = filter.SalesAgent
	}
	if filter.Status != "" {
		criteria["status"] = filter.Status
	}
	if filter.Source != "" {
		criteria["source"] = filter.Source
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.leads().Find(ctx, criteria, opts)
	if err != nil {
		return nil, fmt.Errorf("finding leads: %w", err)
	}

	var docs []leadDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding leads: %w", err)
	}

	leads := make([]entity.Lead, len(docs))
	for i, d := range docs {
		leads[i] = d.toEntity()
	}
	return leads, nil
}

func (r *LeadRepository) Replace(ctx context.Context, lead *entity.Lead) error {
	result, err := r.leads().ReplaceOne(ctx, bson.M{"_id": lead.ID}, toLeadDoc(lead))
	if err != nil {
		return fmt.Errorf("replacing lead: %w", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result, err := r.leads().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}
