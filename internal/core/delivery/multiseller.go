package delivery

// SellerGroup is one seller's share of a marketplace order. Each group ships
// independently from that seller's farm. DistanceKm overrides the base
// distance when positive.
type SellerGroup struct {
	SellerID   string
	Items      []LineItem
	DistanceKm float64
}

// SellerCalculation pairs a seller with the cost record for their shipment.
type SellerCalculation struct {
	SellerID string `json:"seller_id"`
	Calculation
}

// MultiSellerResult aggregates independent per-seller shipments. MaxTrips is
// the maximum across sellers, not the sum: sellers deliver in parallel.
type MultiSellerResult struct {
	SellerCount      int                 `json:"seller_count"`
	TotalWeightGrams float64             `json:"total_weight_grams"`
	TotalCost        float64             `json:"total_cost"`
	MaxTrips         int                 `json:"max_trips"`
	Warnings         []string            `json:"warnings,omitempty"`
	PerSeller        []SellerCalculation `json:"per_seller"`
}

// MultiSellerDelivery computes an independent optimal-vehicle cost per seller
// group and aggregates the results. Warnings are deduplicated across sellers,
// preserving first-seen order.
func (c *Calculator) MultiSellerDelivery(groups []SellerGroup, baseDistanceKm float64) (*MultiSellerResult, error) {
	result := &MultiSellerResult{
		SellerCount: len(groups),
		PerSeller:   make([]SellerCalculation, 0, len(groups)),
	}

	seen := make(map[string]struct{})
	for _, g := range groups {
		distance := g.DistanceKm
		if distance <= 0 {
			distance = baseDistanceKm
		}

		calc, err := c.DeliveryCost(c.OrderWeight(g.Items), distance, "")
		if err != nil {
			return nil, err
		}

		result.TotalWeightGrams += calc.TotalWeightGrams
		result.TotalCost += calc.TotalCost
		if calc.TripsNeeded > result.MaxTrips {
			result.MaxTrips = calc.TripsNeeded
		}
		for _, w := range calc.Warnings {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			result.Warnings = append(result.Warnings, w)
		}
		result.PerSeller = append(result.PerSeller, SellerCalculation{
			SellerID:    g.SellerID,
			Calculation: *calc,
		})
	}
	return result, nil
}
