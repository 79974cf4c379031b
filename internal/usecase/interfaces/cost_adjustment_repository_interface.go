package interfaces

import (
	"context"

	"bathroom_quote_saver/internal/domain/entities"
)

// ICostAdjustmentRepository abstracts DynamoDB persistence for CostAdjustment.
// Adjustments are append-only learning records; there is no read path yet.

type ICostAdjustmentRepository interface {
	Create(ctx context.Context, a entities.CostAdjustment) (entities.CostAdjustment, error)
}
