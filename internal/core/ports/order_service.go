package ports

import (
	"context"
	"time"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
)

// OrderItemInput references a catalog product; weight metadata is loaded
// server-side, never trusted from the client.
type OrderItemInput struct {
	ProductID    string
	Quantity     float64
	SelectedSize string
}

// SellerGroupInput is one seller's items within an order. DistanceKm
// overrides the order-level distance for that seller's shipment when positive.
type SellerGroupInput struct {
	SellerID   string
	Items      []OrderItemInput
	DistanceKm float64
}

// CreateOrderInput carries all data needed to place an order. VehicleID is
// honoured only for single-seller orders; multi-seller shipments always
// auto-select per group.
type CreateOrderInput struct {
	BuyerID    string
	Groups     []SellerGroupInput
	DistanceKm float64
	VehicleID  string
}

// OrderResult is returned by the service after placing an order.
type OrderResult struct {
	Reference   string
	Status      string
	ItemsTotal  float64
	ShippingFee float64
	GrandTotal  float64
	Delivery    domain.DeliveryDetails
	CreatedAt   time.Time
}

// ListOrdersInput carries all parameters for the list endpoint.
type ListOrdersInput struct {
	BuyerID  string
	SellerID string
	DateFrom time.Time
	DateTo   time.Time
	Page     int
	Limit    int
}

// OrderSummary is the lightweight view used in list responses.
type OrderSummary struct {
	Reference   string
	BuyerID     string
	Status      string
	ItemCount   int
	GrandTotal  float64
	ShippingFee float64
	VehicleID   string
	CreatedAt   time.Time
}

// ListOrdersResult is returned by ListOrders.
type ListOrdersResult struct {
	Items      []OrderSummary
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
	GetOrder(ctx context.Context, reference string) (*domain.Order, error)
	ListOrders(ctx context.Context, input ListOrdersInput) (*ListOrdersResult, error)
}
