package ports

import (
	"context"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
)

// ProductRepository reads catalog products for order building.
type ProductRepository interface {
	// FindByIDs returns the products matching the given ids, keyed by id.
	// Missing ids are simply absent from the map; the caller decides whether
	// that is an error.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Product, error)
}
