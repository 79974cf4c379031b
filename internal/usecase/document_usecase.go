package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"
)

var (
	ErrInvalidRecipient   = errors.New("invalid recipient email")
	ErrProposalGeneration = errors.New("proposal generation failed")
	ErrEmailDelivery      = errors.New("email delivery failed")
)

// SendEmailInput is the domain command behind POST /quotes/{id}/send-email.
// Profile is used for the attached proposal when Options.IncludePDF is set.
type SendEmailInput struct {
	Recipient  string
	ClientName string
	Options    entities.EmailOptions
	Profile    entities.UserProfile
}

// IDocumentUseCase exposes document generation and delivery:
//   - POST /quotes/{id}/generate-proposal       => GenerateProposal()
//   - POST /quotes/{id}/generate-quote-summary  => GenerateQuoteSummary()
//   - POST /quotes/{id}/send-email              => SendQuoteEmail()

type IDocumentUseCase interface {
	GenerateProposal(ctx context.Context, quoteID string, profile entities.UserProfile, overrides entities.CostOverrides) ([]byte, string, error)
	GenerateQuoteSummary(ctx context.Context, quoteID string, profile entities.UserProfile, overrides entities.CostOverrides, includeBreakdown bool) ([]byte, string, error)
	SendQuoteEmail(ctx context.Context, quoteID string, input SendEmailInput) error
}

type DocumentUseCase struct {
	quoteRepo   interfaces.IQuoteRepository
	requestRepo interfaces.IQuoteRequestRepository
	renderer    interfaces.IProposalRenderer
	email       interfaces.IEmailGateway
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	quoteRepo interfaces.IQuoteRepository,
	requestRepo interfaces.IQuoteRequestRepository,
	renderer interfaces.IProposalRenderer,
	email interfaces.IEmailGateway,
) *DocumentUseCase {
	return &DocumentUseCase{
		quoteRepo:   quoteRepo,
		requestRepo: requestRepo,
		renderer:    renderer,
		email:       email,
	}
}

// load resolves the quote and its originating request for rendering.
func (u *DocumentUseCase) load(ctx context.Context, quoteID string) (entities.Quote, entities.RenovationRequest, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, entities.RenovationRequest{}, ErrInvalidQuoteID
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, entities.RenovationRequest{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, entities.RenovationRequest{}, ErrQuoteNotFound
	}

	request, err := u.requestRepo.GetByID(ctx, quote.RequestID)
	if err != nil {
		return entities.Quote{}, entities.RenovationRequest{}, err
	}
	if request.ID == "" {
		return entities.Quote{}, entities.RenovationRequest{}, ErrRequestNotFound
	}
	return quote, request, nil
}

func (u *DocumentUseCase) GenerateProposal(ctx context.Context, quoteID string, profile entities.UserProfile, overrides entities.CostOverrides) ([]byte, string, error) {
	quote, request, err := u.load(ctx, quoteID)
	if err != nil {
		return nil, "", err
	}

	pdf, err := u.renderer.RenderProposal(quote, request, profile, overrides)
	if err != nil {
		log.Printf("[document][usecase] proposal render failed quote_id=%s err=%v", quote.ID, err)
		return nil, "", fmt.Errorf("%w: %v", ErrProposalGeneration, err)
	}
	return pdf, "proposal-" + quote.ID + ".pdf", nil
}

func (u *DocumentUseCase) GenerateQuoteSummary(ctx context.Context, quoteID string, profile entities.UserProfile, overrides entities.CostOverrides, includeBreakdown bool) ([]byte, string, error) {
	quote, request, err := u.load(ctx, quoteID)
	if err != nil {
		return nil, "", err
	}

	pdf, err := u.renderer.RenderQuoteSummary(quote, request, profile, overrides, includeBreakdown)
	if err != nil {
		log.Printf("[document][usecase] summary render failed quote_id=%s err=%v", quote.ID, err)
		return nil, "", fmt.Errorf("%w: %v", ErrProposalGeneration, err)
	}
	return pdf, "quote-summary-" + quote.ID + ".pdf", nil
}

// SendQuoteEmail composes and dispatches the quote email. When the caller
// asked for a PDF attachment the full proposal is rendered with the supplied
// profile and no cost overrides.
func (u *DocumentUseCase) SendQuoteEmail(ctx context.Context, quoteID string, input SendEmailInput) error {
	input.Recipient = strings.TrimSpace(input.Recipient)
	if input.Recipient == "" || !strings.Contains(input.Recipient, "@") {
		return ErrInvalidRecipient
	}

	quote, request, err := u.load(ctx, quoteID)
	if err != nil {
		return err
	}

	clientName := strings.TrimSpace(input.ClientName)
	if clientName == "" {
		clientName = request.ClientInfo.Name
	}

	msg := entities.QuoteEmail{
		Recipient:   input.Recipient,
		ClientName:  clientName,
		ProjectName: "Bathroom Renovation",
		TotalCost:   quote.TotalCost,
		GeneratedAt: quote.CreatedAt,
		Options:     input.Options,
	}

	if input.Options.IncludeBreakdown {
		costs := make(map[string]float64, len(quote.CostBreakdown))
		for _, line := range quote.CostBreakdown {
			costs[line.Component] = line.EstimatedCost
		}
		msg.ComponentCosts = costs
	}

	if input.Options.IncludePDF {
		pdf, filename, err := u.GenerateProposal(ctx, quoteID, input.Profile, entities.CostOverrides{})
		if err != nil {
			return err
		}
		msg.PDFContent = pdf
		msg.PDFFilename = filename
	}

	if err := u.email.SendQuoteEmail(ctx, msg); err != nil {
		if errors.Is(err, interfaces.ErrEmailNotConfigured) {
			return err
		}
		log.Printf("[document][usecase] email dispatch failed quote_id=%s recipient=%s err=%v", quote.ID, input.Recipient, err)
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	return nil
}
