package ports

import (
	"context"
	"time"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
)

// QuoteRecordInput is the DTO handed from the estimate flow to the
// quote-audit pipeline.
type QuoteRecordInput struct {
	RequestHash      string
	VehicleID        string
	TotalWeightGrams float64
	DistanceKm       float64
	Trips            int
	TotalCost        float64
	CacheHit         bool
	QuotedAt         time.Time
}

// QuoteService persists served estimates for admin analytics.
type QuoteService interface {
	Record(ctx context.Context, input QuoteRecordInput) error
}

// QuoteStatsService reads back the aggregated quote analytics.
type QuoteStatsService interface {
	QuoteStats(ctx context.Context) ([]domain.VehicleQuoteStat, error)
}
