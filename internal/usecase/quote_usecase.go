package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrRequestNotFound   = errors.New("quote request not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidDimensions = errors.New("room dimensions must be positive")
	ErrInvalidClientInfo = errors.New("client name and email are required")
	ErrInvalidAdjustment = errors.New("invalid adjustment")
)

// Quotes are listed unbounded from the API's point of view; the store call
// caps the scan.
const maxQuoteList = 1000

// IQuoteUseCase exposes the quote operations:
//   - POST /quotes/request        => GenerateQuote()
//   - GET  /quotes/{id}           => GetQuote()
//   - GET  /quotes                => ListQuotes()
//   - POST /quotes/{id}/adjust    => AdjustQuote()

type IQuoteUseCase interface {
	GenerateQuote(ctx context.Context, req entities.RenovationRequest) (entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	AdjustQuote(ctx context.Context, quoteID string, adj entities.CostAdjustment) (entities.CostAdjustment, error)
}

type QuoteUseCase struct {
	requestRepo    interfaces.IQuoteRequestRepository
	quoteRepo      interfaces.IQuoteRepository
	adjustmentRepo interfaces.ICostAdjustmentRepository
	estimator      interfaces.ICostEstimator
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	requestRepo interfaces.IQuoteRequestRepository,
	quoteRepo interfaces.IQuoteRepository,
	adjustmentRepo interfaces.ICostAdjustmentRepository,
	estimator interfaces.ICostEstimator,
) *QuoteUseCase {
	return &QuoteUseCase{
		requestRepo:    requestRepo,
		quoteRepo:      quoteRepo,
		adjustmentRepo: adjustmentRepo,
		estimator:      estimator,
	}
}

// GenerateQuote turns a RenovationRequest into a persisted Quote.
//
// The request is persisted unconditionally before estimation is attempted, so
// a later estimation failure never loses the request. Estimation failures
// (LLM unreachable, unparseable response, missing fields) are absorbed by the
// deterministic fallback pricing; only persistence faults propagate.
func (u *QuoteUseCase) GenerateQuote(ctx context.Context, req entities.RenovationRequest) (entities.Quote, error) {
	m := req.RoomMeasurements
	if m.Length <= 0 || m.Width <= 0 || m.Height <= 0 {
		return entities.Quote{}, ErrInvalidDimensions
	}
	if strings.TrimSpace(req.ClientInfo.Name) == "" || strings.TrimSpace(req.ClientInfo.Email) == "" {
		return entities.Quote{}, ErrInvalidClientInfo
	}

	now := time.Now().UTC()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}

	if _, err := u.requestRepo.Create(ctx, req); err != nil {
		return entities.Quote{}, err
	}

	result := u.estimate(ctx, req)

	breakdown := make([]entities.CostBreakdown, 0, len(result.Breakdown))
	for _, line := range result.Breakdown {
		breakdown = append(breakdown, entities.CostBreakdown{
			Component:     line.Component,
			EstimatedCost: line.EstimatedCost,
			CostRangeMin:  line.CostRangeMin,
			CostRangeMax:  line.CostRangeMax,
			Notes:         line.Notes,
		})
	}

	quote := entities.Quote{
		ID:              uuid.NewString(),
		RequestID:       req.ID,
		TotalCost:       result.TotalCost,
		CostBreakdown:   breakdown,
		AIAnalysis:      result.Analysis,
		ConfidenceLevel: entities.ConfidenceLevel(result.Confidence),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.quoteRepo.Create(ctx, quote)
}

// estimate runs the LLM path and falls back to static percentage pricing on
// any failure. It never returns an error.
func (u *QuoteUseCase) estimate(ctx context.Context, req entities.RenovationRequest) estimateResult {
	components := enabledComponentNames(req.Components)
	area := req.RoomMeasurements.FloorArea()

	if u.estimator == nil {
		log.Printf("[quote][usecase] estimator not configured, using fallback pricing request_id=%s", req.ID)
		return fallbackEstimate(components, area)
	}

	raw, err := u.estimator.Complete(ctx, buildEstimationPrompt(req))
	if err != nil {
		log.Printf("[quote][usecase] estimator call failed, using fallback pricing request_id=%s err=%v", req.ID, err)
		return fallbackEstimate(components, area)
	}

	result, err := parseEstimateResponse(raw)
	if err != nil {
		log.Printf("[quote][usecase] estimator response unusable, using fallback pricing request_id=%s err=%v", req.ID, err)
		return fallbackEstimate(components, area)
	}
	return result
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return u.quoteRepo.List(ctx, maxQuoteList)
}

// AdjustQuote records a CostAdjustment and overwrites the quote's total cost
// in place. Concurrent adjustments on the same quote are last-write-wins; no
// version token is checked.
func (u *QuoteUseCase) AdjustQuote(ctx context.Context, quoteID string, adj entities.CostAdjustment) (entities.CostAdjustment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.CostAdjustment{}, ErrInvalidQuoteID
	}
	if adj.AdjustedCost <= 0 || strings.TrimSpace(adj.AdjustmentReason) == "" {
		return entities.CostAdjustment{}, ErrInvalidAdjustment
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.CostAdjustment{}, err
	}
	if quote.ID == "" {
		return entities.CostAdjustment{}, ErrQuoteNotFound
	}

	adj.ID = uuid.NewString()
	adj.QuoteID = quoteID
	adj.CreatedAt = time.Now().UTC()
	if adj.OriginalCost > 0 {
		adj.AdjustmentRatio = adj.AdjustedCost / adj.OriginalCost
	}

	// Contextual snapshot for future pricing calibration; missing request
	// data is not a reason to refuse the adjustment.
	if req, err := u.requestRepo.GetByID(ctx, quote.RequestID); err == nil && req.ID != "" {
		adj.ProjectSize = req.RoomMeasurements.FloorArea()
		adj.Region = req.ClientInfo.Address
	}

	if _, err := u.adjustmentRepo.Create(ctx, adj); err != nil {
		return entities.CostAdjustment{}, err
	}

	updated, err := u.quoteRepo.UpdateTotalCost(ctx, quoteID, adj.AdjustedCost)
	if err != nil {
		return entities.CostAdjustment{}, err
	}
	if updated.ID == "" {
		return entities.CostAdjustment{}, ErrQuoteNotFound
	}
	return adj, nil
}
