package request

import "bathroom_quote_saver/internal/domain/entities"

// SendEmailRequest delivers a quote to a client inbox. Both toggles
// default to true when omitted.
type SendEmailRequest struct {
	RecipientEmail   string             `json:"recipient_email" binding:"required"`
	ClientName       string             `json:"client_name"`
	IncludeBreakdown *bool              `json:"include_breakdown"`
	IncludePDF       *bool              `json:"include_pdf"`
	UserProfile      UserProfileRequest `json:"user_profile"`
}

func (r SendEmailRequest) Options() entities.EmailOptions {
	opts := entities.EmailOptions{IncludeBreakdown: true, IncludePDF: true}
	if r.IncludeBreakdown != nil {
		opts.IncludeBreakdown = *r.IncludeBreakdown
	}
	if r.IncludePDF != nil {
		opts.IncludePDF = *r.IncludePDF
	}
	return opts
}
