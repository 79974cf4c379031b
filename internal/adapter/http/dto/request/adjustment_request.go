package request

import "bathroom_quote_saver/internal/domain/entities"

// AdjustmentRequest records a contractor correcting an estimated cost.
// The quote id comes from the URL, never from the body.
type AdjustmentRequest struct {
	Component            string             `json:"component"`
	OriginalCost         float64            `json:"original_cost"`
	AdjustedCost         float64            `json:"adjusted_cost" binding:"required"`
	AdjustmentReason     string             `json:"adjustment_reason"`
	ComponentAdjustments map[string]float64 `json:"component_adjustments"`
}

func (r AdjustmentRequest) ToEntity() entities.CostAdjustment {
	return entities.CostAdjustment{
		Component:            r.Component,
		OriginalCost:         r.OriginalCost,
		AdjustedCost:         r.AdjustedCost,
		AdjustmentReason:     r.AdjustmentReason,
		ComponentAdjustments: r.ComponentAdjustments,
	}
}
