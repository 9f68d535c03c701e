package delivery

import (
	"testing"

	"github.com/harvestconnect/delivery-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Unit-of-measure conversions
// ---------------------------------------------------------------------------

func TestOrderWeight_UnitConversions(t *testing.T) {
	calc := NewCalculator()

	cases := []struct {
		name string
		item LineItem
		want float64
	}{
		{
			name: "per kilo",
			item: LineItem{ProductCategory: "vegetables", Unit: domain.UnitPerKilo, Quantity: 2.5},
			want: 2500,
		},
		{
			name: "per gram",
			item: LineItem{ProductCategory: "spices", Unit: domain.UnitPerGram, Quantity: 700},
			want: 700,
		},
		{
			name: "per pound rounds to whole grams",
			item: LineItem{ProductCategory: "meat", Unit: domain.UnitPerPound, Quantity: 1},
			want: 454, // 453.592 rounded
		},
		{
			name: "per bundle",
			item: LineItem{ProductCategory: "herbs", Unit: domain.UnitPerBundle, Quantity: 3},
			want: 1500,
		},
		{
			name: "per pack",
			item: LineItem{ProductCategory: "seeds", Unit: domain.UnitPerPack, Quantity: 4},
			want: 1000,
		},
		{
			name: "per piece uses the category table",
			item: LineItem{ProductCategory: "vegetables", Unit: domain.UnitPerPiece, Quantity: 4},
			want: 600,
		},
		{
			name: "unknown unit treated as per piece",
			item: LineItem{ProductCategory: "fruits", Unit: "per_crate", Quantity: 2},
			want: 400,
		},
		{
			name: "unknown category falls back to the default piece weight",
			item: LineItem{ProductCategory: "artisan-candles", Unit: domain.UnitPerPiece, Quantity: 3},
			want: 600, // 3 * 200 default
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := calc.OrderWeight([]LineItem{tc.item}); got != tc.want {
				t.Errorf("OrderWeight = %v, want %v", got, tc.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Fallback chain
// ---------------------------------------------------------------------------

func TestOrderWeight_SelectedVariantWeightWins(t *testing.T) {
	calc := NewCalculator()

	// 50 large squash at 200 g each, regardless of the stale direct weight.
	item := LineItem{
		ProductCategory: "vegetables",
		Unit:            domain.UnitPerPiece,
		Quantity:        50,
		HasSizeVariants: true,
		SelectedSize:    "l",
		SizeVariants: []domain.SizeVariant{
			{Size: "s", AvgWeightGrams: 80},
			{Size: "l", AvgWeightGrams: 200},
		},
		AvgWeightGrams: 999,
	}
	if got := calc.OrderWeight([]LineItem{item}); got != 10_000 {
		t.Errorf("OrderWeight = %v, want 10000", got)
	}
}

func TestOrderWeight_VariantWithoutWeightUsesSizeEstimate(t *testing.T) {
	calc := NewCalculator()

	// Fruits base 200 g scaled by the xl multiplier 2.0.
	item := LineItem{
		ProductCategory: "fruits",
		Unit:            domain.UnitPerPiece,
		Quantity:        2,
		HasSizeVariants: true,
		SelectedSize:    "xl",
		SizeVariants:    []domain.SizeVariant{{Size: "xl"}},
	}
	if got := calc.OrderWeight([]LineItem{item}); got != 800 {
		t.Errorf("OrderWeight = %v, want 800", got)
	}
}

func TestOrderWeight_UnknownSizeKeyScalesByOne(t *testing.T) {
	calc := NewCalculator()

	item := LineItem{
		ProductCategory: "fruits",
		Unit:            domain.UnitPerPiece,
		Quantity:        1,
		HasSizeVariants: true,
		SelectedSize:    "giant",
		SizeVariants:    []domain.SizeVariant{{Size: "giant"}},
	}
	if got := calc.OrderWeight([]LineItem{item}); got != 200 {
		t.Errorf("OrderWeight = %v, want 200", got)
	}
}

func TestOrderWeight_UnmatchedSelectedSizeIgnoresDirectWeight(t *testing.T) {
	calc := NewCalculator()

	// The chosen size no longer exists on the product, so the direct weight is
	// not trusted either; the category estimate applies.
	item := LineItem{
		ProductCategory: "herbs",
		Unit:            domain.UnitPerPiece,
		Quantity:        2,
		HasSizeVariants: true,
		SelectedSize:    "m",
		SizeVariants:    []domain.SizeVariant{{Size: "l", AvgWeightGrams: 120}},
		AvgWeightGrams:  999,
	}
	if got := calc.OrderWeight([]LineItem{item}); got != 100 {
		t.Errorf("OrderWeight = %v, want 100", got)
	}
}

func TestOrderWeight_DirectWeightUsedWithoutVariants(t *testing.T) {
	calc := NewCalculator()

	item := LineItem{
		ProductCategory: "dairy",
		Unit:            domain.UnitPerPiece,
		Quantity:        3,
		AvgWeightGrams:  120,
	}
	if got := calc.OrderWeight([]LineItem{item}); got != 360 {
		t.Errorf("OrderWeight = %v, want 360", got)
	}
}

func TestOrderWeight_SizeLookupIsCaseInsensitive(t *testing.T) {
	calc := NewCalculator()

	item := LineItem{
		ProductCategory: "Fruits",
		Unit:            domain.UnitPerPiece,
		Quantity:        1,
		HasSizeVariants: true,
		SelectedSize:    "XL",
		SizeVariants:    []domain.SizeVariant{{Size: "XL"}},
	}
	if got := calc.OrderWeight([]LineItem{item}); got != 400 {
		t.Errorf("OrderWeight = %v, want 400", got)
	}
}

func TestOrderWeight_SumsAcrossItems(t *testing.T) {
	calc := NewCalculator()

	items := []LineItem{
		{ProductCategory: "vegetables", Unit: domain.UnitPerKilo, Quantity: 2},  // 2000
		{ProductCategory: "herbs", Unit: domain.UnitPerBundle, Quantity: 1},     // 500
		{ProductCategory: "fruits", Unit: domain.UnitPerPiece, Quantity: 5},     // 1000
	}
	if got := calc.OrderWeight(items); got != 3500 {
		t.Errorf("OrderWeight = %v, want 3500", got)
	}
}

func TestOrderWeight_EmptyOrder(t *testing.T) {
	calc := NewCalculator()
	if got := calc.OrderWeight(nil); got != 0 {
		t.Errorf("OrderWeight(nil) = %v, want 0", got)
	}
}
