package interfaces

import (
	"context"

	"bathroom_quote_saver/internal/domain/entities"
)

// IQuoteRequestRepository abstracts DynamoDB persistence for RenovationRequest.
//
// Requests are immutable once stored; the gateway only ever inserts and
// point-reads them. A miss on GetByID returns a zero-value entity, not an
// error — usecases translate that into a not-found sentinel.

type IQuoteRequestRepository interface {
	Create(ctx context.Context, r entities.RenovationRequest) (entities.RenovationRequest, error)
	GetByID(ctx context.Context, id string) (entities.RenovationRequest, error)
}
