package ports

import (
	"context"
	"time"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
)

// ListOrdersFilter carries all query parameters for listing orders.
type ListOrdersFilter struct {
	BuyerID  string    // optional: scope to one buyer
	SellerID string    // optional: orders containing this seller's items
	DateFrom time.Time // optional: created_at >= DateFrom
	DateTo   time.Time // optional: created_at <= DateTo
	Page     int       // 1-based
	Limit    int       // max rows per page (capped at 100 by service)
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByReference(ctx context.Context, reference string) (*domain.Order, error)
	// List returns a page of orders matching filter and the total count.
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
}
