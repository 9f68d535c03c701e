package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
)

const collectionQuotes = "delivery_quotes"

type QuoteRepository struct {
	col *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{col: db.Collection(collectionQuotes)}
}

// Insert persists a quote audit document.
func (r *QuoteRepository) Insert(ctx context.Context, q *domain.DeliveryQuote) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, q)
	return err
}

// StatsByVehicle aggregates the quote audit trail per vehicle class: quote
// count, average cost, average weight (kg), share of multi-trip quotes, and
// total quoted amount.
func (r *QuoteRepository) StatsByVehicle(ctx context.Context) ([]domain.VehicleQuoteStat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$vehicle_id"},
			{Key: "quotes", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_cost", Value: bson.D{{Key: "$avg", Value: "$total_cost"}}},
			{Key: "avg_weight_kg", Value: bson.D{{Key: "$avg", Value: bson.D{
				{Key: "$divide", Value: bson.A{"$total_weight_grams", 1000}},
			}}}},
			{Key: "multi_trip_pct", Value: bson.D{{Key: "$avg", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$gt", Value: bson.A{"$trips", 1}}}, 100, 0,
				}},
			}}}},
			{Key: "total_quoted", Value: bson.D{{Key: "$sum", Value: "$total_cost"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "quotes", Value: -1}}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []domain.VehicleQuoteStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// EnsureIndexes creates necessary indexes on the quotes collection.
func (r *QuoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "vehicle_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
