package delivery

import "github.com/harvestconnect/delivery-service/internal/core/domain"

// defaultFleet is the static vehicle configuration, ordered ascending by
// payload. Capacities are usable payload per trip; the rate card mirrors the
// courier partner's published fares (PHP, no symbol).
//
// The two truck tiers above large_truck quote flat per-km pricing at any
// distance: the partner publishes no long-haul card for them, so none is
// configured here.
var defaultFleet = []domain.VehicleClass{
	{
		ID:             domain.VehicleMotorcycle,
		DisplayName:    "Motorcycle",
		MaxWeightGrams: 20_000,
		Pricing: domain.TieredByDistance{
			Base:           49,
			ShortRatePerKm: 6,
			LongRatePerKm:  5,
			ShortLimitKm:   5,
		},
	},
	{
		ID:             domain.VehicleSedan,
		DisplayName:    "Sedan",
		MaxWeightGrams: 200_000,
		Pricing: domain.TieredByDistance{
			Base:           100,
			ShortRatePerKm: 18,
			LongRatePerKm:  15,
			ShortLimitKm:   5,
		},
	},
	{
		ID:             domain.VehicleSmallTruck,
		DisplayName:    "Small Truck (1,000 kg)",
		MaxWeightGrams: 1_000_000,
		Pricing: domain.FlatOrLongHaul{
			Base:      270,
			PerKmRate: 26,
			LongHaul:  &domain.LongHaulRate{ThresholdKm: 40, BaseFare: 1560, RatePerKm: 20},
		},
	},
	{
		ID:             domain.VehicleMediumTruck,
		DisplayName:    "Medium Truck (2,000 kg)",
		MaxWeightGrams: 2_000_000,
		Pricing: domain.FlatOrLongHaul{
			Base:      490,
			PerKmRate: 33,
			LongHaul:  &domain.LongHaulRate{ThresholdKm: 40, BaseFare: 2440, RatePerKm: 28},
		},
	},
	{
		ID:             domain.VehicleLargeTruck,
		DisplayName:    "Large Truck (3,000 kg)",
		MaxWeightGrams: 3_000_000,
		Pricing: domain.FlatOrLongHaul{
			Base:      820,
			PerKmRate: 40,
			LongHaul:  &domain.LongHaulRate{ThresholdKm: 40, BaseFare: 3620, RatePerKm: 34},
		},
	},
	{
		// 7.5t GVW chassis; usable payload after body weight is 4,500 kg.
		ID:             domain.VehicleExtraLarge7T,
		DisplayName:    "Extra Large Truck (7t GVW)",
		MaxWeightGrams: 4_500_000,
		Pricing: domain.FlatOrLongHaul{
			Base:      2450,
			PerKmRate: 48,
		},
	},
	{
		ID:             domain.VehicleExtraLarge12,
		DisplayName:    "Extra Large Truck (12t)",
		MaxWeightGrams: 12_000_000,
		Pricing: domain.FlatOrLongHaul{
			Base:      4320,
			PerKmRate: 65,
		},
	},
}
