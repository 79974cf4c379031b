package entities

import "time"

// CostAdjustment records one user correction to a quote's cost. Adjustments
// are write-once log entries kept for future pricing calibration; they are
// never mutated after insertion.
//
// Storage model (DynamoDB):
//   - table: cost_adjustments
//   - PK: id
//
// Component is empty for whole-quote adjustments. AdjustmentRatio is derived
// from adjusted/original at creation time so the learning data survives later
// quote mutations. ProjectSize and Region are contextual snapshots for the
// same reason.
type CostAdjustment struct {
	ID                   string             `json:"id"`
	QuoteID              string             `json:"quote_id"`
	Component            string             `json:"component,omitempty"`
	OriginalCost         float64            `json:"original_cost"`
	AdjustedCost         float64            `json:"adjusted_cost"`
	AdjustmentRatio      float64            `json:"adjustment_ratio"`
	AdjustmentReason     string             `json:"adjustment_reason"`
	ComponentAdjustments map[string]float64 `json:"component_adjustments,omitempty"`
	ProjectSize          float64            `json:"project_size,omitempty"`
	Region               string             `json:"region,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
}
