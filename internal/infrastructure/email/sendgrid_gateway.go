package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"
	"bathroom_quote_saver/pkg"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const quoteEmailTemplate = `<html>
<head>
<style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; }
    .quote-summary { background: #f8f9fa; padding: 15px; border-radius: 8px; margin: 20px 0; }
    .cost-breakdown { margin: 20px 0; }
    .cost-item { display: flex; justify-content: space-between; padding: 5px 0; border-bottom: 1px solid #eee; }
    .total-cost { font-size: 24px; font-weight: bold; color: #28a745; text-align: center; margin: 20px 0; }
    .footer { background: #f8f9fa; padding: 15px; text-align: center; font-size: 12px; color: #666; }
</style>
</head>
<body>
    <div class="header">
        <h1>Bathroom Quote Saver</h1>
        <p>Professional Bathroom Renovation Quote</p>
    </div>

    <div class="content">
        <h2>Dear {{.ClientName}},</h2>
        <p>Thank you for your interest in our bathroom renovation services. Please find your personalized quote below:</p>

        <div class="quote-summary">
            <h3>Project: {{.ProjectName}}</h3>
            <p><strong>Generated:</strong> {{.GeneratedAt}}</p>
            <p><strong>AI-Powered Analysis:</strong> This quote was generated using advanced AI algorithms to ensure accuracy and competitive pricing.</p>
        </div>
{{if .Breakdown}}
        <div class="cost-breakdown">
            <h3>Detailed Cost Breakdown</h3>
{{range .Breakdown}}            <div class="cost-item">
                <span>{{.Name}}</span>
                <span>{{.Cost}}</span>
            </div>
{{end}}        </div>
{{end}}
        <div class="total-cost">
            Total Project Cost: {{.TotalCost}}
        </div>

        <div class="quote-summary">
            <h3>What's Included:</h3>
            <ul>
                <li>Professional consultation and planning</li>
                <li>High-quality materials and fixtures</li>
                <li>Expert installation and craftsmanship</li>
                <li>Project management and coordination</li>
                <li>Quality assurance and warranty</li>
            </ul>
        </div>

        <div class="quote-summary">
            <h3>Next Steps:</h3>
            <p>This quote is valid for 30 days. To proceed with your bathroom renovation project, please contact us to discuss:</p>
            <ul>
                <li>Project timeline and scheduling</li>
                <li>Design options and material selections</li>
                <li>Permits and approvals (if required)</li>
                <li>Payment terms and options</li>
            </ul>
        </div>

        <p>We look forward to transforming your bathroom into the space of your dreams!</p>

        <p>Best regards,<br>
        <strong>The Bathroom Quote Saver Team</strong></p>
    </div>

    <div class="footer">
        <p>This quote was generated by Bathroom Quote Saver</p>
    </div>
</body>
</html>`

var emailBodyTmpl = template.Must(template.New("quote_email").Parse(quoteEmailTemplate))

type breakdownLine struct {
	Name string
	Cost string
}

type emailBodyData struct {
	ClientName  string
	ProjectName string
	GeneratedAt string
	TotalCost   string
	Breakdown   []breakdownLine
}

// SendGridGateway delivers quote emails via SendGrid. Configuration is
// checked on send rather than at construction so the API can boot and
// serve quotes without email credentials.
type SendGridGateway struct {
	apiKey      string
	senderEmail string
	senderName  string
	mockMode    bool
}

var _ interfaces.IEmailGateway = (*SendGridGateway)(nil)

func NewSendGridGateway(apiKey, senderEmail, senderName string) *SendGridGateway {
	if isEmailGatewayMockEnabled() {
		log.Printf("[email][gateway] mock mode enabled")
		return &SendGridGateway{mockMode: true}
	}
	if apiKey == "" {
		log.Printf("[email][gateway] missing SENDGRID_API_KEY, email delivery disabled")
	}
	if senderEmail == "" {
		log.Printf("[email][gateway] missing SENDER_EMAIL, email delivery disabled")
	}
	return &SendGridGateway{apiKey: apiKey, senderEmail: senderEmail, senderName: senderName}
}

func (g *SendGridGateway) SendQuoteEmail(ctx context.Context, msg entities.QuoteEmail) error {
	if g != nil && g.mockMode {
		log.Printf("[email][gateway] mock send recipient=%s", msg.Recipient)
		return nil
	}

	if g == nil || g.apiKey == "" || g.senderEmail == "" {
		log.Printf("[email][gateway] gateway not configured")
		return interfaces.ErrEmailNotConfigured
	}

	body, err := renderEmailBody(msg)
	if err != nil {
		log.Printf("[email][gateway] body render failed err=%v", err)
		return err
	}

	subject := fmt.Sprintf("Bathroom Renovation Quote - %s", msg.ClientName)
	from := mail.NewEmail(g.senderName, g.senderEmail)
	to := mail.NewEmail(msg.ClientName, msg.Recipient)
	message := mail.NewSingleEmail(from, subject, to, "", body)

	if msg.Options.IncludePDF && len(msg.PDFContent) > 0 && msg.PDFFilename != "" {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(msg.PDFContent))
		attachment.SetType("application/pdf")
		attachment.SetFilename(msg.PDFFilename)
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}

	log.Printf("[email][gateway] send start recipient=%s attachment=%t", msg.Recipient, msg.Options.IncludePDF)
	client := sendgrid.NewSendClient(g.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("[email][gateway] send failed err=%v", err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("[email][gateway] send rejected status=%d body=%s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid rejected message with status %d", resp.StatusCode)
	}

	log.Printf("[email][gateway] send success recipient=%s status=%d", msg.Recipient, resp.StatusCode)
	return nil
}

func renderEmailBody(msg entities.QuoteEmail) (string, error) {
	data := emailBodyData{
		ClientName:  msg.ClientName,
		ProjectName: msg.ProjectName,
		TotalCost:   pkg.FormatCurrency(msg.TotalCost),
	}
	if msg.GeneratedAt.IsZero() {
		data.GeneratedAt = "Today"
	} else {
		data.GeneratedAt = msg.GeneratedAt.UTC().Format(time.RFC1123)
	}

	if msg.Options.IncludeBreakdown && len(msg.ComponentCosts) > 0 {
		names := make([]string, 0, len(msg.ComponentCosts))
		for name := range msg.ComponentCosts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			data.Breakdown = append(data.Breakdown, breakdownLine{
				Name: name,
				Cost: pkg.FormatCurrency(msg.ComponentCosts[name]),
			})
		}
	}

	var buf bytes.Buffer
	if err := emailBodyTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isEmailGatewayMockEnabled() bool {
	for _, key := range []string{"EMAIL_GATEWAY_MOCK", "SENDGRID_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
