package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"
)

func TestSendQuoteEmailNotConfigured(t *testing.T) {
	g := &SendGridGateway{}

	err := g.SendQuoteEmail(context.Background(), entities.QuoteEmail{
		Recipient:  "client@example.com",
		ClientName: "Jane",
	})
	if !errors.Is(err, interfaces.ErrEmailNotConfigured) {
		t.Fatalf("expected ErrEmailNotConfigured, got %v", err)
	}
}

func TestRenderEmailBodyWithBreakdown(t *testing.T) {
	body, err := renderEmailBody(entities.QuoteEmail{
		Recipient:   "client@example.com",
		ClientName:  "Jane Builder",
		ProjectName: "Smith ensuite",
		TotalCost:   4320,
		GeneratedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		ComponentCosts: map[string]float64{
			"Tiling":     1080,
			"Demolition": 540,
		},
		Options: entities.EmailOptions{IncludeBreakdown: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Dear Jane Builder,",
		"Project: Smith ensuite",
		"Total Project Cost: $4,320.00",
		"Detailed Cost Breakdown",
		"Demolition",
		"$1,080.00",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}

	// Components render alphabetically.
	if strings.Index(body, "Demolition") > strings.Index(body, "Tiling") {
		t.Fatalf("expected Demolition before Tiling in breakdown")
	}
}

func TestRenderEmailBodyWithoutBreakdown(t *testing.T) {
	body, err := renderEmailBody(entities.QuoteEmail{
		ClientName:     "Jane",
		ProjectName:    "Bathroom Renovation",
		TotalCost:      999.5,
		ComponentCosts: map[string]float64{"Tiling": 999.5},
		Options:        entities.EmailOptions{IncludeBreakdown: false},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(body, "Detailed Cost Breakdown") {
		t.Fatalf("expected breakdown section omitted")
	}
	if !strings.Contains(body, "Total Project Cost: $999.50") {
		t.Fatalf("expected total in body, got:\n%s", body)
	}
	if !strings.Contains(body, "Generated:</strong> Today") {
		t.Fatalf("expected zero timestamp rendered as Today")
	}
}
