package delivery

import (
	"math"
	"strings"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
)

const (
	gramsPerKilo  = 1000
	gramsPerPound = 453.592
	// Rough shipping weights for count-based bulk units.
	gramsPerBundle = 500
	gramsPerPack   = 250

	// defaultCategoryWeightGrams covers categories the table does not know.
	defaultCategoryWeightGrams = 200
)

// categoryBaseWeights is the per-piece shipping weight assumed for each
// product category, in grams. Lookup is case-insensitive.
var categoryBaseWeights = map[string]float64{
	"vegetables": 150,
	"fruits":     200,
	"herbs":      50,
	"grains":     500,
	"dairy":      250,
	"meat":       300,
	"seafood":    250,
	"nuts":       100,
	"seeds":      50,
	"spices":     25,
}

// sizeMultipliers scales a category base weight by the selected size.
var sizeMultipliers = map[string]float64{
	"xs":  0.5,
	"s":   0.7,
	"m":   1.0,
	"l":   1.5,
	"xl":  2.0,
	"xxl": 2.5,
}

// OrderWeight estimates the total shipment weight of the given line items in
// grams, rounded to the nearest gram. Per item it walks a fallback chain from
// most-precise to least-precise data, so a weight is always produced:
//
//  1. the selected size variant's recorded weight,
//  2. the product's direct per-piece weight,
//  3. a category/unit estimate.
func (c *Calculator) OrderWeight(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += itemWeight(item)
	}
	return math.Round(total)
}

func itemWeight(item LineItem) float64 {
	if item.HasSizeVariants && item.SelectedSize != "" {
		if v, ok := findVariant(item.SizeVariants, item.SelectedSize); ok {
			if v.AvgWeightGrams > 0 {
				return v.AvgWeightGrams * item.Quantity
			}
			// Size matched but the seller never weighed it.
			return estimateWeightBySize(item.SelectedSize, item.ProductCategory) * item.Quantity
		}
		// Selected size matches no variant at all: fall through to the
		// category estimate rather than trusting stale direct weights.
		return estimateWeightByCategory(item.ProductCategory, item.Unit, item.Quantity)
	}
	if item.AvgWeightGrams > 0 {
		return item.AvgWeightGrams * item.Quantity
	}
	return estimateWeightByCategory(item.ProductCategory, item.Unit, item.Quantity)
}

func findVariant(variants []domain.SizeVariant, size string) (domain.SizeVariant, bool) {
	for _, v := range variants {
		if v.Size == size {
			return v, true
		}
	}
	return domain.SizeVariant{}, false
}

// estimateWeightBySize returns a per-piece weight for a size key, scaling the
// category base weight by the size multiplier. Unknown sizes scale by 1.
func estimateWeightBySize(size, category string) float64 {
	multiplier, ok := sizeMultipliers[strings.ToLower(size)]
	if !ok {
		multiplier = 1.0
	}
	return categoryBaseWeight(category) * multiplier
}

// estimateWeightByCategory converts a quantity to grams based on the unit of
// measure. Count-based units fall back to the category base weight per piece;
// unrecognised units are treated as per-piece.
func estimateWeightByCategory(category string, unit domain.UnitOfMeasure, quantity float64) float64 {
	switch unit {
	case domain.UnitPerKilo:
		return quantity * gramsPerKilo
	case domain.UnitPerGram:
		return quantity
	case domain.UnitPerPound:
		return quantity * gramsPerPound
	case domain.UnitPerBundle:
		return quantity * gramsPerBundle
	case domain.UnitPerPack:
		return quantity * gramsPerPack
	default:
		return quantity * categoryBaseWeight(category)
	}
}

func categoryBaseWeight(category string) float64 {
	if w, ok := categoryBaseWeights[strings.ToLower(category)]; ok {
		return w
	}
	return defaultCategoryWeightGrams
}
