package entities

import "time"

// EmailOptions are the caller-selected content switches for a quote email.
type EmailOptions struct {
	IncludeBreakdown bool `json:"include_breakdown"`
	IncludePDF       bool `json:"include_pdf"`
}

// QuoteEmail is the normalized message handed to the email gateway. The PDF
// attachment is only added when Options.IncludePDF is set and PDFContent was
// actually supplied.
type QuoteEmail struct {
	Recipient      string
	ClientName     string
	ProjectName    string
	TotalCost      float64
	GeneratedAt    time.Time
	ComponentCosts map[string]float64
	Options        EmailOptions
	PDFContent     []byte
	PDFFilename    string
}
