package delivery

import "sort"

// Viability tags how well a vehicle class fits a given load.
type Viability string

const (
	ViabilityOptimal       Viability = "optimal"
	ViabilitySuitable      Viability = "suitable"
	ViabilityOversized     Viability = "oversized"
	ViabilityMultipleTrips Viability = "requires_multiple_trips"
)

// rank orders options so the system's own pick appears first, reasonable
// alternatives follow, and poor fits sink regardless of raw price.
func (v Viability) rank() int {
	switch v {
	case ViabilityOptimal:
		return 0
	case ViabilitySuitable:
		return 1
	case ViabilityOversized:
		return 2
	case ViabilityMultipleTrips:
		return 3
	default:
		return 4
	}
}

// Option is one entry of the customer-facing vehicle comparison menu.
type Option struct {
	Calculation
	Viability Viability `json:"viability"`
}

// Options computes a cost record for every vehicle class, even unsuitable
// ones, and returns them sorted by viability rank then ascending total cost.
func (c *Calculator) Options(totalWeightGrams, distanceKm float64) ([]Option, error) {
	optimalID := c.SelectOptimalVehicle(totalWeightGrams)

	opts := make([]Option, 0, len(c.fleet))
	for _, v := range c.fleet {
		calc, err := c.DeliveryCost(totalWeightGrams, distanceKm, v.ID)
		if err != nil {
			return nil, err
		}

		viability := ViabilitySuitable
		switch {
		case v.ID == optimalID:
			viability = ViabilityOptimal
		case calc.TripsNeeded > 1:
			viability = ViabilityMultipleTrips
		case totalWeightGrams/v.MaxWeightGrams*100 < 30:
			viability = ViabilityOversized
		}

		opts = append(opts, Option{Calculation: *calc, Viability: viability})
	}

	sort.SliceStable(opts, func(i, j int) bool {
		if opts[i].Viability.rank() != opts[j].Viability.rank() {
			return opts[i].Viability.rank() < opts[j].Viability.rank()
		}
		return opts[i].TotalCost < opts[j].TotalCost
	})
	return opts, nil
}
