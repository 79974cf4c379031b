package response

import (
	"time"

	"bathroom_quote_saver/internal/domain/entities"
)

type CostBreakdownResponse struct {
	Component     string  `json:"component"`
	EstimatedCost float64 `json:"estimated_cost"`
	CostRangeMin  float64 `json:"cost_range_min"`
	CostRangeMax  float64 `json:"cost_range_max"`
	Notes         string  `json:"notes"`
}

type QuoteResponse struct {
	ID              string                  `json:"id"`
	RequestID       string                  `json:"request_id"`
	TotalCost       float64                 `json:"total_cost"`
	CostBreakdown   []CostBreakdownResponse `json:"cost_breakdown"`
	AIAnalysis      string                  `json:"ai_analysis"`
	ConfidenceLevel string                  `json:"confidence_level"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	breakdown := make([]CostBreakdownResponse, 0, len(q.CostBreakdown))
	for _, line := range q.CostBreakdown {
		breakdown = append(breakdown, CostBreakdownResponse{
			Component:     line.Component,
			EstimatedCost: line.EstimatedCost,
			CostRangeMin:  line.CostRangeMin,
			CostRangeMax:  line.CostRangeMax,
			Notes:         line.Notes,
		})
	}
	return QuoteResponse{
		ID:              q.ID,
		RequestID:       q.RequestID,
		TotalCost:       q.TotalCost,
		CostBreakdown:   breakdown,
		AIAnalysis:      q.AIAnalysis,
		ConfidenceLevel: string(q.ConfidenceLevel),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// AdjustmentResponse mirrors the legacy adjust endpoint contract.
type AdjustmentResponse struct {
	Message  string  `json:"message"`
	NewTotal float64 `json:"new_total"`
}

func FromAdjustment(adj entities.CostAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		Message:  "Quote adjusted successfully",
		NewTotal: adj.AdjustedCost,
	}
}

type SuppliersResponse struct {
	Component string                      `json:"component"`
	Suppliers []entities.MaterialSupplier `json:"suppliers"`
}
