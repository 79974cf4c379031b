package repository

import (
	"reflect"
	"testing"
	"time"

	"bathroom_quote_saver/internal/domain/entities"
)

func TestQuoteRequestItemRoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	req := entities.RenovationRequest{
		ID: "req-1",
		ClientInfo: entities.ClientInfo{
			Name:    "Jane Builder",
			Email:   "jane@example.com",
			Phone:   "0400 000 000",
			Address: "1 Tile St",
		},
		RoomMeasurements: entities.RoomMeasurements{Length: 2.5, Width: 1.2, Height: 2.4},
		Components: entities.RenovationComponents{
			Demolition: true,
			Tiling:     true,
		},
		DetailedComponents: map[string]interface{}{
			"tiling": map[string]interface{}{"enabled": true},
		},
		AdditionalNotes: "remove old vanity",
		CreatedAt:       created,
	}

	got := fromQuoteRequestItem(toQuoteRequestItem(req))
	if !reflect.DeepEqual(got, req) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, req)
	}
}

func TestQuoteItemRoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	q := entities.Quote{
		ID:        "quote-1",
		RequestID: "req-1",
		TotalCost: 4320,
		CostBreakdown: []entities.CostBreakdown{
			{Component: "Tiling", EstimatedCost: 1080, CostRangeMin: 864, CostRangeMax: 1404, Notes: "Standard pricing"},
		},
		AIAnalysis:      "estimate analysis",
		ConfidenceLevel: entities.ConfidenceMedium,
		CreatedAt:       created,
		UpdatedAt:       created,
	}

	got := fromQuoteItem(toQuoteItem(q))
	if !reflect.DeepEqual(got, q) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, q)
	}
}

func TestSavedProjectItemRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := entities.SavedProject{
		ID:          "proj-1",
		ProjectName: "Smith ensuite",
		Category:    "Residential",
		QuoteID:     "quote-1",
		ClientName:  "Jane Builder",
		TotalCost:   4320,
		RequestData: entities.RenovationRequest{
			ID:        "req-1",
			CreatedAt: now,
		},
		Notes:     "awaiting approval",
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := fromSavedProjectItem(toSavedProjectItem(p))
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestParseTimeInvalid(t *testing.T) {
	if got := parseTime("not-a-timestamp"); !got.IsZero() {
		t.Fatalf("expected zero time, got %v", got)
	}
}
