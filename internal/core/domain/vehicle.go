package domain

import "errors"

// Vehicle class identifiers. These form a closed enumeration shared with API
// clients; anything else is rejected with ErrInvalidVehicleType.
const (
	VehicleMotorcycle   = "motorcycle"
	VehicleSedan        = "sedan"
	VehicleSmallTruck   = "small_truck"
	VehicleMediumTruck  = "medium_truck"
	VehicleLargeTruck   = "large_truck"
	VehicleExtraLarge7T = "extra_large_7t"
	VehicleExtraLarge12 = "extra_large_12t"
)

var ErrInvalidVehicleType = errors.New("invalid vehicle type")

// VehiclePricing is implemented by the two rate-card shapes. Modelling the
// shapes as separate types makes the distance-cost dispatch exhaustive instead
// of presence-checking optional fields.
type VehiclePricing interface {
	BaseFee() float64
	DistanceCost(distanceKm float64) float64
}

// TieredByDistance bills a short-distance rate up to ShortLimitKm and a long
// rate for every kilometre beyond it. Used by the two smallest classes.
type TieredByDistance struct {
	Base           float64
	ShortRatePerKm float64
	LongRatePerKm  float64
	ShortLimitKm   float64
}

func (p TieredByDistance) BaseFee() float64 { return p.Base }

func (p TieredByDistance) DistanceCost(distanceKm float64) float64 {
	short := distanceKm
	if short > p.ShortLimitKm {
		short = p.ShortLimitKm
	}
	long := distanceKm - p.ShortLimitKm
	if long < 0 {
		long = 0
	}
	return short*p.ShortRatePerKm + long*p.LongRatePerKm
}

// LongHaulRate reproduces a rate card that quotes an all-inclusive fare for
// the first ThresholdKm and bills extra distance per kilometre beyond it.
type LongHaulRate struct {
	ThresholdKm float64
	BaseFare    float64
	RatePerKm   float64
}

// FlatOrLongHaul bills a flat per-kilometre rate, switching to the long-haul
// fare when one is configured and the trip exceeds its threshold. The two
// largest classes carry no long-haul card and stay flat at any distance.
type FlatOrLongHaul struct {
	Base      float64
	PerKmRate float64
	LongHaul  *LongHaulRate
}

func (p FlatOrLongHaul) BaseFee() float64 { return p.Base }

func (p FlatOrLongHaul) DistanceCost(distanceKm float64) float64 {
	if p.LongHaul != nil && distanceKm > p.LongHaul.ThresholdKm {
		// BaseFare is all-inclusive; subtract Base because the caller always
		// adds the base fee separately.
		return (p.LongHaul.BaseFare - p.Base) + (distanceKm-p.LongHaul.ThresholdKm)*p.LongHaul.RatePerKm
	}
	return distanceKm * p.PerKmRate
}

// VehicleClass is one tier of the delivery fleet. MaxWeightGrams is the usable
// payload per trip, not the rated tonnage.
type VehicleClass struct {
	ID             string
	DisplayName    string
	MaxWeightGrams float64
	Pricing        VehiclePricing
}
