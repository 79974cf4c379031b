package interfaces

import "context"

// ICostEstimator abstracts the external LLM used for cost estimation.
//
// Complete sends one prompt (single turn, no streaming) and returns the raw
// model text. The quote usecase owns prompt construction and response
// parsing; any error here is absorbed by the deterministic fallback pricing,
// never surfaced to the caller.
type ICostEstimator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
