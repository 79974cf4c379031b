package entities

import "time"

// ConfidenceLevel labels how much trust the estimator places in a quote.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// CostBreakdown is one component's cost entry within a quote.
type CostBreakdown struct {
	Component     string  `json:"component"`
	EstimatedCost float64 `json:"estimated_cost"`
	CostRangeMin  float64 `json:"cost_range_min"`
	CostRangeMax  float64 `json:"cost_range_max"`
	Notes         string  `json:"notes"`
}

// Quote is a priced estimate derived from a RenovationRequest.
//
// Storage model (DynamoDB):
//   - table: quotes
//   - PK: id
//
// TotalCost may later be overwritten in place by a cost adjustment; the
// breakdown line items are never reconciled against it. Concurrent
// adjustments race with last-write-wins.
type Quote struct {
	ID              string          `json:"id"`
	RequestID       string          `json:"request_id"`
	TotalCost       float64         `json:"total_cost"`
	CostBreakdown   []CostBreakdown `json:"cost_breakdown"`
	AIAnalysis      string          `json:"ai_analysis"`
	ConfidenceLevel ConfidenceLevel `json:"confidence_level"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
