package ports

import (
	"context"

	"github.com/harvestconnect/delivery-service/internal/core/delivery"
)

// LineItemInput is one cart row as supplied by the client. The weight fields
// mirror the product catalog so estimates work even before an order exists.
type LineItemInput struct {
	ProductCategory string
	Unit            string
	Quantity        float64
	HasSizeVariants bool
	SizeVariants    []SizeVariantInput
	SelectedSize    string
	AvgWeightGrams  float64
}

// SizeVariantInput is one selectable product size.
type SizeVariantInput struct {
	Size           string
	AvgWeightGrams float64
}

// EstimateInput carries one delivery-estimate request. A zero DistanceKm
// means "use the default"; an empty VehicleID lets the engine pick.
type EstimateInput struct {
	Items      []LineItemInput
	DistanceKm float64
	VehicleID  string
}

// EstimateResult is the selected calculation plus the full ranked vehicle
// menu for the comparison UI.
type EstimateResult struct {
	Calculation delivery.Calculation `json:"calculation"`
	Options     []delivery.Option    `json:"options"`
	CacheHit    bool                 `json:"-"`
}

// SellerGroupEstimateInput is one seller's share of a multi-seller estimate.
type SellerGroupEstimateInput struct {
	SellerID   string
	Items      []LineItemInput
	DistanceKm float64
}

// MultiSellerEstimateInput carries a marketplace-wide estimate request.
type MultiSellerEstimateInput struct {
	Groups     []SellerGroupEstimateInput
	DistanceKm float64
}

// VehicleInfo is one fleet entry for the catalogue endpoint.
type VehicleInfo struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"name"`
	MaxWeightKg float64 `json:"max_weight_kg"`
	BaseFee     float64 `json:"base_fee"`
}

// DeliveryService defines the estimate-flow use cases.
type DeliveryService interface {
	Estimate(ctx context.Context, input EstimateInput) (*EstimateResult, error)
	MultiSellerEstimate(ctx context.Context, input MultiSellerEstimateInput) (*delivery.MultiSellerResult, error)
	Vehicles() []VehicleInfo
}
