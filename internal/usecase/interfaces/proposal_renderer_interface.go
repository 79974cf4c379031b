package interfaces

import "bathroom_quote_saver/internal/domain/entities"

// IProposalRenderer abstracts PDF document generation.
//
// Both renderers are synchronous and return the complete document as a byte
// buffer; any rendering fault (such as missing client info) is surfaced as an
// error with no retry.
type IProposalRenderer interface {
	RenderProposal(quote entities.Quote, request entities.RenovationRequest, profile entities.UserProfile, overrides entities.CostOverrides) ([]byte, error)
	RenderQuoteSummary(quote entities.Quote, request entities.RenovationRequest, profile entities.UserProfile, overrides entities.CostOverrides, includeBreakdown bool) ([]byte, error)
}
