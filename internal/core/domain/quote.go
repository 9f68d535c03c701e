package domain

import "time"

// DeliveryQuote is the audit record written for every estimate the API
// serves. It feeds the admin quote-analytics aggregation.
type DeliveryQuote struct {
	ID               string    `bson:"_id,omitempty"`
	RequestHash      string    `bson:"request_hash"`
	VehicleID        string    `bson:"vehicle_id"`
	TotalWeightGrams float64   `bson:"total_weight_grams"`
	DistanceKm       float64   `bson:"distance_km"`
	Trips            int       `bson:"trips"`
	TotalCost        float64   `bson:"total_cost"`
	CacheHit         bool      `bson:"cache_hit"`
	CreatedAt        time.Time `bson:"created_at"`
}

// VehicleQuoteStat is one row of the admin quote-analytics aggregation.
type VehicleQuoteStat struct {
	VehicleID     string  `bson:"_id" json:"vehicle_id"`
	Quotes        int64   `bson:"quotes" json:"quotes"`
	AvgCost       float64 `bson:"avg_cost" json:"avg_cost"`
	AvgWeightKg   float64 `bson:"avg_weight_kg" json:"avg_weight_kg"`
	MultiTripPct  float64 `bson:"multi_trip_pct" json:"multi_trip_pct"`
	TotalQuoted   float64 `bson:"total_quoted" json:"total_quoted"`
}
