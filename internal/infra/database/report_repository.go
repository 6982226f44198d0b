package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mvalerio/crm-backend/internal/entity"
	"github.com/mvalerio/crm-backend/internal/usecase"
)

// ReportRepository answers the read-only aggregates straight from the leads
// collection.
type ReportRepository struct {
	DB *mongo.Database
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) leads() *mongo.Collection {
	return r.DB.Collection(leadsCollection)
}

// ClosedSince returns closed leads with closed_at >= cutoff. The bound is
// inclusive and there is no upper bound.
func (r *ReportRepository) ClosedSince(ctx context.Context, cutoff time.Time) ([]entity.Lead, error) {
	filter := bson.M{
		"status":    entity.StatusClosed,
		"closed_at": bson.M{"$gte": cutoff},
	}

	opts := options.Find().SetSort(bson.D{{Key: "closed_at", Value: -1}})
	cursor, err := r.leads().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("finding closed leads: %w", err)
	}

	var docs []leadDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding closed leads: %w", err)
	}

	leads := make([]entity.Lead, len(docs))
	for i, d := range docs {
		leads[i] = d.toEntity()
	}
	return leads, nil
}

func (r *ReportRepository) PipelineCount(ctx context.Context) (int64, error) {
	count, err := r.leads().CountDocuments(ctx, bson.M{
		"status": bson.M{"$ne": entity.StatusClosed},
	})
	if err != nil {
		return 0, fmt.Errorf("counting pipeline leads: %w", err)
	}
	return count, nil
}

// ClosedCountByAgent groups closed leads by their agent reference. The $sort
// on the grouping key keeps the output order deterministic; agents without a
// closed lead simply produce no group.
func (r *ReportRepository) ClosedCountByAgent(ctx context.Context) ([]usecase.AgentClosedCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: entity.StatusClosed}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$sales_agent_id"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.leads().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregating closed leads: %w", err)
	}

	var rows []struct {
		AgentID string `bson:"_id"`
		Count   int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decoding aggregation: %w", err)
	}

	counts := make([]usecase.AgentClosedCount, len(rows))
	for i, row := range rows {
		counts[i] = usecase.AgentClosedCount{AgentID: row.AgentID, Count: row.Count}
	}
	return counts, nil
}
