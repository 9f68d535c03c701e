package ports

import (
	"context"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
)

// QuoteRepository handles quote-audit persistence and analytics reads.
type QuoteRepository interface {
	Insert(ctx context.Context, q *domain.DeliveryQuote) error
	// StatsByVehicle aggregates quote counts, averages, and multi-trip share
	// per vehicle class.
	StatsByVehicle(ctx context.Context) ([]domain.VehicleQuoteStat, error)
}
