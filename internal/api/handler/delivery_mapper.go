package handler

import (
	"fmt"

	"github.com/harvestconnect/delivery-service/internal/core/delivery"
	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

// --- Request → Service input ---

func toEstimateInput(req estimateRequest) ports.EstimateInput {
	return ports.EstimateInput{
		Items:      toLineItemInputs(req.Items),
		DistanceKm: req.DistanceKm,
		VehicleID:  req.VehicleID,
	}
}

func toMultiSellerInput(req multiSellerEstimateRequest) ports.MultiSellerEstimateInput {
	groups := make([]ports.SellerGroupEstimateInput, 0, len(req.Groups))
	for _, g := range req.Groups {
		groups = append(groups, ports.SellerGroupEstimateInput{
			SellerID:   g.SellerID,
			Items:      toLineItemInputs(g.Items),
			DistanceKm: g.DistanceKm,
		})
	}
	return ports.MultiSellerEstimateInput{
		Groups:     groups,
		DistanceKm: req.DistanceKm,
	}
}

func toLineItemInputs(items []lineItemRequest) []ports.LineItemInput {
	out := make([]ports.LineItemInput, 0, len(items))
	for _, it := range items {
		variants := make([]ports.SizeVariantInput, 0, len(it.SizeVariants))
		for _, v := range it.SizeVariants {
			variants = append(variants, ports.SizeVariantInput{
				Size:           v.Size,
				AvgWeightGrams: v.AvgWeightGrams,
			})
		}
		out = append(out, ports.LineItemInput{
			ProductCategory: it.ProductCategory,
			Unit:            it.Unit,
			Quantity:        it.Quantity,
			HasSizeVariants: it.HasSizeVariants,
			SizeVariants:    variants,
			SelectedSize:    it.SelectedSize,
			AvgWeightGrams:  it.AvgWeightGrams,
		})
	}
	return out
}

// --- Service result → HTTP response ---

func toEstimateResponse(r *ports.EstimateResult) estimateResponse {
	options := make([]optionResponse, 0, len(r.Options))
	for _, opt := range r.Options {
		options = append(options, optionResponse{
			calculationResponse: toCalculationResponse(opt.Calculation),
			Viability:           string(opt.Viability),
		})
	}
	return estimateResponse{
		Calculation: toCalculationResponse(r.Calculation),
		Options:     options,
		Cached:      r.CacheHit,
	}
}

func toCalculationResponse(calc delivery.Calculation) calculationResponse {
	return calculationResponse{
		VehicleID:         calc.VehicleID,
		VehicleName:       calc.VehicleDisplayName,
		TotalWeightGrams:  calc.TotalWeightGrams,
		TotalWeightKg:     calc.TotalWeightKg,
		DistanceKm:        calc.DistanceKm,
		TripsNeeded:       calc.TripsNeeded,
		MaxWeightPerTripG: calc.MaxWeightPerTripG,
		WeightUtilization: fmt.Sprintf("%.1f%%", calc.WeightUtilizationPct),
		BaseFee:           calc.BaseFee,
		DistanceFee:       calc.DistanceFee,
		CostPerTrip:       calc.CostPerTrip,
		TotalCost:         calc.TotalCost,
		Warnings:          calc.Warnings,
		Recommendations:   calc.Recommendations,
		Breakdown: breakdownResponse{
			BaseFee:     calc.Breakdown.BaseFee,
			DistanceFee: calc.Breakdown.DistanceFee,
			Trips:       calc.Breakdown.Trips,
			CostPerTrip: calc.Breakdown.CostPerTrip,
		},
	}
}

func toMultiSellerResponse(r *delivery.MultiSellerResult) multiSellerEstimateResponse {
	perSeller := make([]sellerCalculationResponse, 0, len(r.PerSeller))
	for _, sc := range r.PerSeller {
		perSeller = append(perSeller, sellerCalculationResponse{
			SellerID:            sc.SellerID,
			calculationResponse: toCalculationResponse(sc.Calculation),
		})
	}
	return multiSellerEstimateResponse{
		SellerCount:      r.SellerCount,
		TotalWeightGrams: r.TotalWeightGrams,
		TotalWeightKg:    fmt.Sprintf("%.1f", r.TotalWeightGrams/1000),
		TotalCost:        r.TotalCost,
		MaxTrips:         r.MaxTrips,
		Warnings:         r.Warnings,
		PerSeller:        perSeller,
	}
}

func toVehiclesResponse(vehicles []ports.VehicleInfo) vehiclesResponse {
	out := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, vehicleResponse{
			ID:          v.ID,
			Name:        v.DisplayName,
			MaxWeightKg: v.MaxWeightKg,
			BaseFee:     v.BaseFee,
		})
	}
	return vehiclesResponse{Vehicles: out}
}
