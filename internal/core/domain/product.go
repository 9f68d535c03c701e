package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// UnitOfMeasure describes how a product's quantity is expressed.
type UnitOfMeasure string

const (
	UnitPerPiece  UnitOfMeasure = "per_piece"
	UnitPerKilo   UnitOfMeasure = "per_kilo"
	UnitPerGram   UnitOfMeasure = "per_gram"
	UnitPerPound  UnitOfMeasure = "per_pound"
	UnitPerBundle UnitOfMeasure = "per_bundle"
	UnitPerPack   UnitOfMeasure = "per_pack"
)

// IsValid reports whether u is one of the known units. Unknown units are not
// an error anywhere in the system: the weight estimator treats them as
// per-piece, so validation is advisory only.
func (u UnitOfMeasure) IsValid() bool {
	switch u {
	case UnitPerPiece, UnitPerKilo, UnitPerGram, UnitPerPound, UnitPerBundle, UnitPerPack:
		return true
	}
	return false
}

// SizeVariant is one selectable size of a product. AvgWeightGrams may be zero
// when the seller never weighed that size; the estimator fills the gap.
type SizeVariant struct {
	Size           string  `json:"size" bson:"size"`
	AvgWeightGrams float64 `json:"avg_weight_grams,omitempty" bson:"avg_weight_grams,omitempty"`
}

// Product carries the catalog metadata the delivery engine needs. Real
// catalogs are heterogeneous: some products track an exact piece weight, some
// only a category, so every weight field here is optional.
type Product struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	SellerID        string        `json:"seller_id" bson:"seller_id"`
	Name            string        `json:"name" bson:"name"`
	Category        string        `json:"category" bson:"category"`
	Unit            UnitOfMeasure `json:"unit" bson:"unit"`
	Price           float64       `json:"price" bson:"price"`
	HasSizeVariants bool          `json:"has_size_variants" bson:"has_size_variants"`
	SizeVariants    []SizeVariant `json:"size_variants,omitempty" bson:"size_variants,omitempty"`
	AvgWeightGrams  float64       `json:"avg_weight_grams,omitempty" bson:"avg_weight_grams,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
}
