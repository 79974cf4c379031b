package usecase

import (
	"fmt"
	"math"
	"strings"
)

// Fallback pricing constants. The weights deliberately do not sum to 1.0:
// each enabled component is priced independently as a share of the base
// per-square-meter figure, not as a slice of one pool.
const fallbackBaseCostPerSqm = 1200.0

const fallbackComponentWeight = 0.15 // unknown components

var fallbackWeights = map[string]float64{
	"Demolition":          0.15,
	"Framing":             0.20,
	"Plumbing Rough In":   0.25,
	"Electrical Rough In": 0.15,
	"Plastering":          0.18,
	"Waterproofing":       0.12,
	"Tiling":              0.30,
	"Fit Off":             0.20,
}

// fallbackEstimate is the deterministic pricing model used when the LLM path
// fails. It is a pure function of the enabled component names (human
// readable) and the floor area. Costs are rounded to whole currency units and
// carry a -20%/+30% range band; confidence is always Medium.
func fallbackEstimate(components []string, floorArea float64) estimateResult {
	baseTotal := fallbackBaseCostPerSqm * floorArea

	breakdown := make([]estimateLine, 0, len(components))
	total := 0.0
	for _, component := range components {
		weight, ok := fallbackWeights[component]
		if !ok {
			weight = fallbackComponentWeight
		}
		cost := baseTotal * weight
		total += cost
		breakdown = append(breakdown, estimateLine{
			Component:     component,
			EstimatedCost: math.Round(cost),
			CostRangeMin:  math.Round(cost * 0.8),
			CostRangeMax:  math.Round(cost * 1.3),
			Notes:         fmt.Sprintf("Standard pricing for %s based on %.1fm² area", strings.ToLower(component), floorArea),
		})
	}

	return estimateResult{
		TotalCost: math.Round(total),
		Breakdown: breakdown,
		Analysis: fmt.Sprintf(
			"Cost estimate based on %.1fm² bathroom with %d selected components. Pricing includes materials and labor at standard market rates.",
			floorArea, len(components)),
		Confidence: "Medium",
	}
}
