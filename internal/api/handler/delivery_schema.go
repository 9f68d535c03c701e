package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---
//
// Weight metadata is deliberately permissive: unknown categories, units, and
// size keys fall back to documented estimator defaults instead of erroring,
// so validation only rejects structurally broken payloads and negatives.

type sizeVariantRequest struct {
	Size           string  `json:"size"             validate:"required"`
	AvgWeightGrams float64 `json:"avg_weight_grams" validate:"gte=0"`
}

type lineItemRequest struct {
	ProductCategory string               `json:"product_category"`
	Unit            string               `json:"unit"`
	Quantity        float64              `json:"quantity" validate:"required,gt=0"`
	HasSizeVariants bool                 `json:"has_size_variants"`
	SizeVariants    []sizeVariantRequest `json:"size_variants" validate:"dive"`
	SelectedSize    string               `json:"selected_size"`
	AvgWeightGrams  float64              `json:"avg_weight_grams" validate:"gte=0"`
}

type estimateRequest struct {
	Items      []lineItemRequest `json:"items"       validate:"required,min=1,dive"`
	DistanceKm float64           `json:"distance_km" validate:"gte=0"`
	VehicleID  string            `json:"vehicle_id"`
}

type sellerGroupRequest struct {
	SellerID   string            `json:"seller_id"   validate:"required"`
	Items      []lineItemRequest `json:"items"       validate:"required,min=1,dive"`
	DistanceKm float64           `json:"distance_km" validate:"gte=0"`
}

type multiSellerEstimateRequest struct {
	Groups     []sellerGroupRequest `json:"groups"      validate:"required,min=1,dive"`
	DistanceKm float64              `json:"distance_km" validate:"gte=0"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer, kept separate from the
// engine types so the JSON contract is not coupled to internal changes.

type breakdownResponse struct {
	BaseFee     float64 `json:"base_fee"`
	DistanceFee float64 `json:"distance_fee"`
	Trips       int     `json:"trips"`
	CostPerTrip float64 `json:"cost_per_trip"`
}

type calculationResponse struct {
	VehicleID         string            `json:"vehicle_id"`
	VehicleName       string            `json:"vehicle_name"`
	TotalWeightGrams  float64           `json:"total_weight_grams"`
	TotalWeightKg     string            `json:"total_weight_kg"`
	DistanceKm        float64           `json:"distance_km"`
	TripsNeeded       int               `json:"trips_needed"`
	MaxWeightPerTripG float64           `json:"max_weight_per_trip_grams"`
	WeightUtilization string            `json:"weight_utilization"`
	BaseFee           float64           `json:"base_fee"`
	DistanceFee       float64           `json:"distance_fee"`
	CostPerTrip       float64           `json:"cost_per_trip"`
	TotalCost         float64           `json:"total_cost"`
	Warnings          []string          `json:"warnings,omitempty"`
	Recommendations   []string          `json:"recommendations,omitempty"`
	Breakdown         breakdownResponse `json:"breakdown"`
}

type optionResponse struct {
	calculationResponse
	Viability string `json:"viability"`
}

type estimateResponse struct {
	Calculation calculationResponse `json:"calculation"`
	Options     []optionResponse    `json:"options"`
	Cached      bool                `json:"cached"`
}

type sellerCalculationResponse struct {
	SellerID string `json:"seller_id"`
	calculationResponse
}

type multiSellerEstimateResponse struct {
	SellerCount      int                         `json:"seller_count"`
	TotalWeightGrams float64                     `json:"total_weight_grams"`
	TotalWeightKg    string                      `json:"total_weight_kg"`
	TotalCost        float64                     `json:"total_cost"`
	MaxTrips         int                         `json:"max_trips"`
	Warnings         []string                    `json:"warnings,omitempty"`
	PerSeller        []sellerCalculationResponse `json:"per_seller"`
}

type vehicleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MaxWeightKg float64 `json:"max_weight_kg"`
	BaseFee     float64 `json:"base_fee"`
}

type vehiclesResponse struct {
	Vehicles []vehicleResponse `json:"vehicles"`
}
