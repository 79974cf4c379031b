package interfaces

import (
	"context"
	"errors"

	"bathroom_quote_saver/internal/domain/entities"
)

// ErrEmailNotConfigured is returned (wrapped) by gateway implementations when
// the provider credential or sender address is missing. The check happens at
// send time, not at process start, so a partially configured deployment still
// serves every non-email endpoint.
var ErrEmailNotConfigured = errors.New("email gateway not configured")

// IEmailGateway abstracts the transactional email provider (e.g. SendGrid).
type IEmailGateway interface {
	SendQuoteEmail(ctx context.Context, msg entities.QuoteEmail) error
}
