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
)

type agentDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d agentDoc) toEntity() entity.SalesAgent {
	return entity.SalesAgent{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
	}
}

type AgentRepository struct {
	DB *mongo.Database
}

func NewAgentRepository(db *mongo.Database) *AgentRepository {
	return &AgentRepository{DB: db}
}

func (r *AgentRepository) agents() *mongo.Collection {
	return r.DB.Collection(agentsCollection)
}

func (r *AgentRepository) Create(ctx context.Context, agent *entity.SalesAgent) error {
	doc := agentDoc{
		ID:        agent.ID,
		Name:      agent.Name,
		Email:     agent.Email,
		CreatedAt: agent.CreatedAt,
	}
	if _, err := r.agents().InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("inserting sales agent: %w", err)
	}
	return nil
}

func (r *AgentRepository) FindByID(ctx context.Context, id string) (*entity.SalesAgent, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AgentRepository) FindByEmail(ctx context.Context, email string) (*entity.SalesAgent, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AgentRepository) findOne(ctx context.Context, filter bson.M) (*entity.SalesAgent, error) {
	var doc agentDoc
	err := r.agents().FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrAgentNotFound
		}
		return nil, fmt.Errorf("finding sales agent: %w", err)
	}

	agent := doc.toEntity()
	return &agent, nil
}

func (r *AgentRepository) FindAll(ctx context.Context) ([]entity.SalesAgent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.agents().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("finding sales agents: %w", err)
	}

	var docs []agentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding sales agents: %w", err)
	}

	agents := make([]entity.SalesAgent, len(docs))
	for i, d := range docs {
		agents[i] = d.toEntity()
	}
	return agents, nil
}
