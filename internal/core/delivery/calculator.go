// Package delivery implements the delivery-cost and vehicle-selection engine:
// shipment weight estimation over heterogeneous catalog metadata, capacity
// constrained vehicle selection, tiered distance pricing, multi-trip
// decomposition, and a ranked list of alternative vehicle options.
//
// Every operation is a pure function of its arguments and the immutable fleet
// table, so a Calculator is safe to share across goroutines.
package delivery

import (
	"fmt"
	"math"
	"sort"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
)

// DefaultDistanceKm is applied when a caller supplies no travel distance.
const DefaultDistanceKm = 5

// LineItem is one cart or order row as seen by the calculator. It carries the
// product's weight metadata and the purchased quantity; the quantity's
// meaning depends on Unit (count of pieces, or weight/volume units).
type LineItem struct {
	ProductCategory string
	Unit            domain.UnitOfMeasure
	Quantity        float64
	HasSizeVariants bool
	SizeVariants    []domain.SizeVariant
	SelectedSize    string
	AvgWeightGrams  float64
}

// Breakdown is a duplicate view of the fee components kept for API
// compatibility with the order-details contract.
type Breakdown struct {
	BaseFee     float64 `json:"base_fee"`
	DistanceFee float64 `json:"distance_fee"`
	Trips       int     `json:"trips"`
	CostPerTrip float64 `json:"cost_per_trip"`
}

// Calculation is the result of one delivery-cost computation. TotalCost is
// the only field rounded to whole currency units; TotalWeightKg is formatted
// to one decimal for display.
type Calculation struct {
	VehicleID            string    `json:"vehicle_id"`
	VehicleDisplayName   string    `json:"vehicle_name"`
	TotalWeightGrams     float64   `json:"total_weight_grams"`
	TotalWeightKg        string    `json:"total_weight_kg"`
	DistanceKm           float64   `json:"distance_km"`
	TripsNeeded          int       `json:"trips_needed"`
	MaxWeightPerTripG    float64   `json:"max_weight_per_trip_grams"`
	WeightUtilizationPct float64   `json:"weight_utilization_pct"`
	BaseFee              float64   `json:"base_fee"`
	DistanceFee          float64   `json:"distance_fee"`
	CostPerTrip          float64   `json:"cost_per_trip"`
	TotalCost            float64   `json:"total_cost"`
	Warnings             []string  `json:"warnings,omitempty"`
	Recommendations      []string  `json:"recommendations,omitempty"`
	Breakdown            Breakdown `json:"breakdown"`
}

// Calculator computes delivery costs over an immutable fleet table.
type Calculator struct {
	fleet []domain.VehicleClass // ascending by MaxWeightGrams
}

// NewCalculator returns a Calculator over the default fleet.
func NewCalculator() *Calculator {
	return NewCalculatorWithFleet(defaultFleet)
}

// NewCalculatorWithFleet returns a Calculator over a copy of the given fleet,
// sorted ascending by payload so selection can scan in order.
func NewCalculatorWithFleet(fleet []domain.VehicleClass) *Calculator {
	sorted := make([]domain.VehicleClass, len(fleet))
	copy(sorted, fleet)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MaxWeightGrams < sorted[j].MaxWeightGrams
	})
	return &Calculator{fleet: sorted}
}

// Fleet returns a copy of the vehicle table for catalogue listings.
func (c *Calculator) Fleet() []domain.VehicleClass {
	out := make([]domain.VehicleClass, len(c.fleet))
	copy(out, c.fleet)
	return out
}

// SelectOptimalVehicle returns the id of the smallest vehicle whose payload
// fits the given weight. When the weight exceeds every class, the largest
// class is returned: overflow is handled by multi-trip decomposition, not by
// selection failure.
func (c *Calculator) SelectOptimalVehicle(totalWeightGrams float64) string {
	for _, v := range c.fleet {
		if v.MaxWeightGrams >= totalWeightGrams {
			return v.ID
		}
	}
	return c.fleet[len(c.fleet)-1].ID
}

// DistanceCost returns the distance component of one trip with the given
// vehicle, dispatching on its rate-card shape.
func (c *Calculator) DistanceCost(v domain.VehicleClass, distanceKm float64) float64 {
	return v.Pricing.DistanceCost(distanceKm)
}

// DeliveryCost computes the full cost record for shipping totalWeightGrams
// over distanceKm. An empty vehicleID selects the optimal class; an unknown
// one returns domain.ErrInvalidVehicleType.
func (c *Calculator) DeliveryCost(totalWeightGrams, distanceKm float64, vehicleID string) (*Calculation, error) {
	if vehicleID == "" {
		vehicleID = c.SelectOptimalVehicle(totalWeightGrams)
	}
	v, ok := c.vehicleByID(vehicleID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidVehicleType, vehicleID)
	}

	trips := int(math.Ceil(totalWeightGrams / v.MaxWeightGrams))
	if trips < 1 {
		trips = 1
	}

	baseFee := v.Pricing.BaseFee()
	distanceFee := v.Pricing.DistanceCost(distanceKm)
	costPerTrip := baseFee + distanceFee
	totalCost := math.Round(costPerTrip * float64(trips))

	var warnings, recommendations []string
	if trips > 1 {
		warnings = append(warnings,
			fmt.Sprintf("Order weight %.1f kg exceeds the %s capacity of %.1f kg",
				totalWeightGrams/1000, v.DisplayName, v.MaxWeightGrams/1000),
			fmt.Sprintf("%d separate deliveries required", trips),
		)
		if optID := c.SelectOptimalVehicle(totalWeightGrams); optID != v.ID {
			if opt, found := c.vehicleByID(optID); found {
				cost := opt.Pricing.BaseFee() + opt.Pricing.DistanceCost(distanceKm)
				recommendations = append(recommendations,
					fmt.Sprintf("Consider %s: handles the full load in one trip for %.0f",
						opt.DisplayName, math.Round(cost)))
			}
		}
	}

	utilization := totalWeightGrams / v.MaxWeightGrams * 100
	if utilization < 30 && v.ID != domain.VehicleMotorcycle {
		// 80% margin keeps the suggestion from being overloaded itself.
		if smallID := c.SelectOptimalVehicle(totalWeightGrams * 0.8); smallID != v.ID {
			if small, found := c.vehicleByID(smallID); found {
				cost := small.Pricing.BaseFee() + small.Pricing.DistanceCost(distanceKm)
				recommendations = append(recommendations,
					fmt.Sprintf("%s would be more cost-effective at %.0f",
						small.DisplayName, math.Round(cost)))
			}
		}
	}

	displayUtilization := utilization
	if displayUtilization > 100 {
		// A vehicle doing repeat trips should never show >100% per trip.
		displayUtilization = 100
	}

	return &Calculation{
		VehicleID:            v.ID,
		VehicleDisplayName:   v.DisplayName,
		TotalWeightGrams:     totalWeightGrams,
		TotalWeightKg:        fmt.Sprintf("%.1f", totalWeightGrams/1000),
		DistanceKm:           distanceKm,
		TripsNeeded:          trips,
		MaxWeightPerTripG:    v.MaxWeightGrams,
		WeightUtilizationPct: displayUtilization,
		BaseFee:              baseFee,
		DistanceFee:          distanceFee,
		CostPerTrip:          costPerTrip,
		TotalCost:            totalCost,
		Warnings:             warnings,
		Recommendations:      recommendations,
		Breakdown: Breakdown{
			BaseFee:     baseFee,
			DistanceFee: distanceFee,
			Trips:       trips,
			CostPerTrip: costPerTrip,
		},
	}, nil
}

func (c *Calculator) vehicleByID(id string) (domain.VehicleClass, bool) {
	for _, v := range c.fleet {
		if v.ID == id {
			return v, true
		}
	}
	return domain.VehicleClass{}, false
}
