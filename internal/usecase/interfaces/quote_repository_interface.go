package interfaces

import (
	"context"

	"bathroom_quote_saver/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateTotalCost is the only mutation: a cost adjustment overwrites the
// stored total (last-write-wins, no version check). It returns the updated
// quote, or a zero-value quote when the id does not exist.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, limit int32) ([]entities.Quote, error)
	UpdateTotalCost(ctx context.Context, id string, newTotal float64) (entities.Quote, error)
}
