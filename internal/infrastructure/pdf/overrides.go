package pdf

import "bathroom_quote_saver/internal/domain/entities"

// applyOverrides returns the breakdown and total a document should print
// after per-component and total overrides are applied.
//
// Resolution order:
//  1. each component with an entry in overrides.Costs gets that cost
//  2. an explicit override total wins outright
//  3. otherwise, if any component was overridden, the total is re-summed
//  4. otherwise the stored quote total stands
func applyOverrides(quote entities.Quote, overrides entities.CostOverrides) ([]entities.CostBreakdown, float64) {
	breakdown := make([]entities.CostBreakdown, len(quote.CostBreakdown))
	copy(breakdown, quote.CostBreakdown)

	adjusted := false
	for i := range breakdown {
		if cost, ok := overrides.Costs[breakdown[i].Component]; ok {
			breakdown[i].EstimatedCost = cost
			adjusted = true
		}
	}

	if overrides.Total != nil {
		return breakdown, *overrides.Total
	}
	if adjusted {
		total := 0.0
		for _, line := range breakdown {
			total += line.EstimatedCost
		}
		return breakdown, total
	}
	return breakdown, quote.TotalCost
}
