package pdf

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"
	"bathroom_quote_saver/pkg"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var ErrMissingClientInfo = errors.New("quote request has no client info")

var (
	brandBlue   = props.Color{Red: 30, Green: 64, Blue: 175}
	accentBlue  = props.Color{Red: 37, Green: 99, Blue: 235}
	brandGreen  = props.Color{Red: 5, Green: 150, Blue: 105}
	bodyGrey    = props.Color{Red: 55, Green: 65, Blue: 81}
	paleBlueBg  = props.Color{Red: 239, Green: 246, Blue: 255}
	headerWhite = props.Color{Red: 245, Green: 245, Blue: 245}
)

const (
	defaultCompanyName = "Bathroom Quote Saver.AI"
	defaultContactName = "Professional Team"
	defaultEmail       = "info@bathroomquotesaver.ai"
	defaultLicense     = "XXXX-XXXX"
	defaultYears       = "5"
	defaultProjects    = "100+"
)

// MarotoRenderer builds proposal and quote-summary PDFs with maroto.
type MarotoRenderer struct{}

var _ interfaces.IProposalRenderer = (*MarotoRenderer)(nil)

func NewMarotoRenderer() *MarotoRenderer {
	return &MarotoRenderer{}
}

func (r *MarotoRenderer) RenderProposal(quote entities.Quote, request entities.RenovationRequest, profile entities.UserProfile, overrides entities.CostOverrides) ([]byte, error) {
	if strings.TrimSpace(request.ClientInfo.Name) == "" {
		return nil, ErrMissingClientInfo
	}

	breakdown, total := applyOverrides(quote, overrides)
	company := orDefault(profile.CompanyName, defaultCompanyName)

	m := maroto.New(documentConfig())

	m.AddRows(coverRows(quote, request, company, total)...)
	m.AddRows(companyOverviewRows(profile)...)
	m.AddRows(projectSummaryRows(request)...)
	m.AddRows(scopeOfWorksRows()...)
	m.AddRows(investmentRows(breakdown, total)...)
	m.AddRows(termsRows()...)
	m.AddRows(contactRows(profile)...)

	doc, err := m.Generate()
	if err != nil {
		log.Printf("[document][pdf] proposal generation failed quote_id=%s err=%v", quote.ID, err)
		return nil, err
	}
	log.Printf("[document][pdf] proposal generated quote_id=%s bytes=%d", quote.ID, len(doc.GetBytes()))
	return doc.GetBytes(), nil
}

func (r *MarotoRenderer) RenderQuoteSummary(quote entities.Quote, request entities.RenovationRequest, profile entities.UserProfile, overrides entities.CostOverrides, includeBreakdown bool) ([]byte, error) {
	if strings.TrimSpace(request.ClientInfo.Name) == "" {
		return nil, ErrMissingClientInfo
	}

	breakdown, total := applyOverrides(quote, overrides)
	company := orDefault(profile.CompanyName, defaultCompanyName)

	m := maroto.New(documentConfig())

	m.AddRows(
		text.NewRow(12, company, props.Text{Size: 20, Style: fontstyle.Bold, Align: align.Center, Color: &accentBlue}),
		text.NewRow(8, "BATHROOM RENOVATION QUOTE SUMMARY", props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Center, Color: &brandBlue}),
		line.NewRow(4),
	)
	m.AddRows(detailTableRows(quote, request)...)
	m.AddRows(
		text.NewRow(16, fmt.Sprintf("Total Project Cost: %s", pkg.FormatCurrency(total)), props.Text{
			Size: 18, Style: fontstyle.Bold, Align: align.Center, Color: &brandGreen, Top: 4,
		}),
	)

	if includeBreakdown && len(breakdown) > 0 {
		m.AddRows(sectionHeaderRow("COST BREAKDOWN"))
		m.AddRows(breakdownTableRows(breakdown, total)...)
	}

	m.AddRows(
		text.NewRow(10, "This quote is valid for 30 days from the date of issue.", props.Text{
			Size: 9, Align: align.Center, Color: &bodyGrey, Top: 4,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		log.Printf("[document][pdf] summary generation failed quote_id=%s err=%v", quote.ID, err)
		return nil, err
	}
	log.Printf("[document][pdf] summary generated quote_id=%s bytes=%d", quote.ID, len(doc.GetBytes()))
	return doc.GetBytes(), nil
}

func documentConfig() *entity.Config {
	return config.NewBuilder().
		WithLeftMargin(20).
		WithRightMargin(20).
		WithTopMargin(20).
		WithBottomMargin(20).
		Build()
}

func coverRows(quote entities.Quote, request entities.RenovationRequest, company string, total float64) []core.Row {
	rows := []core.Row{
		text.NewRow(14, company, props.Text{Size: 22, Style: fontstyle.Bold, Align: align.Center, Color: &accentBlue}),
		text.NewRow(10, "PROFESSIONAL BATHROOM RENOVATION PROPOSAL", props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center, Color: &brandBlue}),
		line.NewRow(6),
	}
	rows = append(rows, detailTableRows(quote, request)...)

	floorArea := request.RoomMeasurements.FloorArea()
	wallArea := request.RoomMeasurements.WallArea()
	rows = append(rows,
		sectionHeaderRow("PROJECT OVERVIEW"),
		bodyRow(12, fmt.Sprintf(
			"We are pleased to present this comprehensive proposal for your bathroom renovation project. This proposal outlines our professional approach to transforming your %.1fm2 bathroom with meticulous attention to detail and quality craftsmanship.",
			floorArea)),
		bodyRow(5, fmt.Sprintf("Floor Area: %.1f square meters", floorArea)),
		bodyRow(5, fmt.Sprintf("Wall Area: %.1f square meters", wallArea)),
		bodyRow(5, fmt.Sprintf("Room Dimensions: %gm x %gm x %gm",
			request.RoomMeasurements.Length, request.RoomMeasurements.Width, request.RoomMeasurements.Height)),
		text.NewRow(12, fmt.Sprintf("Estimated Investment: %s", pkg.FormatCurrency(total)), props.Text{
			Size: 14, Style: fontstyle.Bold, Color: &brandGreen, Top: 4,
		}),
	)
	return rows
}

func detailTableRows(quote entities.Quote, request entities.RenovationRequest) []core.Row {
	details := [][2]string{
		{"Client Name:", request.ClientInfo.Name},
		{"Project Address:", request.ClientInfo.Address},
		{"Contact:", request.ClientInfo.Email},
		{"Phone:", request.ClientInfo.Phone},
		{"Proposal Date:", time.Now().Format("January 2, 2006")},
		{"Project ID:", orDefault(quote.ID, fmt.Sprintf("BQS-%d-001", time.Now().Year()))},
	}

	rows := make([]core.Row, 0, len(details))
	for _, d := range details {
		rows = append(rows, row.New(7).Add(
			text.NewCol(4, d[0], props.Text{Size: 10, Style: fontstyle.Bold, Color: &brandBlue}),
			text.NewCol(8, d[1], props.Text{Size: 10, Color: &bodyGrey}),
		).WithStyle(&props.Cell{BackgroundColor: &paleBlueBg}))
	}
	return rows
}

func companyOverviewRows(profile entities.UserProfile) []core.Row {
	company := orDefault(profile.CompanyName, "Professional Bathroom Renovations")
	return []core.Row{
		sectionHeaderRow("ABOUT OUR COMPANY"),
		bodyRow(14, fmt.Sprintf(
			"%s brings years of experience in delivering exceptional bathroom renovation projects. Our commitment to quality, precision, and client satisfaction has established us as a trusted partner in residential renovations.",
			company)),
		subHeaderRow("Our Core Values"),
		bodyRow(5, "Precision and accuracy in all work phases"),
		bodyRow(5, "Clear communication throughout the project"),
		bodyRow(5, "Meeting agreed deadlines and schedules"),
		bodyRow(5, "Minimizing disruption to your daily routine"),
		bodyRow(5, "Transparent pricing with no hidden costs"),
		bodyRow(5, "Quality materials and professional craftsmanship"),
		subHeaderRow("Professional Credentials"),
		bodyRow(5, fmt.Sprintf("Licensed Building Contractor: %s", orDefault(profile.LicenseNumber, defaultLicense))),
		bodyRow(5, "Fully Insured and Bonded"),
		bodyRow(5, "Certificate IV in Building and Construction"),
		bodyRow(5, fmt.Sprintf("Over %s years of specialized experience", orDefault(profile.YearsExperience, defaultYears))),
		bodyRow(5, fmt.Sprintf("%s successful projects completed", orDefault(profile.ProjectsCompleted, defaultProjects))),
	}
}

func projectSummaryRows(request entities.RenovationRequest) []core.Row {
	rows := []core.Row{sectionHeaderRow("PROJECT SUMMARY")}

	components := selectedComponentSummary(request.DetailedComponents)
	if len(components) == 0 {
		for _, key := range request.Components.EnabledKeys() {
			components = append(components, componentEntry{name: humanizeKey(key)})
		}
	}

	if len(components) > 0 {
		rows = append(rows, subHeaderRow("Selected Project Components"))
		for _, c := range components {
			rows = append(rows, bodyRow(5, c.name))
			for _, sub := range c.subtasks {
				rows = append(rows, row.New(5).Add(
					text.NewCol(1, "", props.Text{}),
					text.NewCol(11, sub, props.Text{Size: 9, Color: &bodyGrey}),
				))
			}
		}
	}
	return rows
}

type componentEntry struct {
	name     string
	subtasks []string
}

// selectedComponentSummary walks the free-form detailed_components map:
// {component: {enabled: bool, subtasks: {key: bool}}}.
func selectedComponentSummary(detailed map[string]interface{}) []componentEntry {
	keys := make([]string, 0, len(detailed))
	for k := range detailed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var entries []componentEntry
	for _, key := range keys {
		details, ok := detailed[key].(map[string]interface{})
		if !ok {
			continue
		}
		if enabled, ok := details["enabled"].(bool); !ok || !enabled {
			continue
		}

		entry := componentEntry{name: humanizeKey(key)}
		if subtasks, ok := details["subtasks"].(map[string]interface{}); ok {
			subKeys := make([]string, 0, len(subtasks))
			for sk := range subtasks {
				subKeys = append(subKeys, sk)
			}
			sort.Strings(subKeys)
			for _, sk := range subKeys {
				if selected, ok := subtasks[sk].(bool); ok && selected {
					entry.subtasks = append(entry.subtasks, humanizeKey(sk))
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

var workStages = []struct {
	title string
	tasks []string
}{
	{
		title: "STAGE 1: DEMOLITION & PREPARATION",
		tasks: []string{
			"Site protection and preparation",
			"Removal of existing fixtures and fittings",
			"Demolition of wall and ceiling linings (as selected)",
			"Removal of floor tiles and substrate (as selected)",
			"Plumbing rough-in modifications",
			"Electrical rough-in work",
			"Waste disposal and site cleanup",
		},
	},
	{
		title: "STAGE 2: CONSTRUCTION & INSTALLATION",
		tasks: []string{
			"Framing and structural modifications",
			"New wall and ceiling sheet installation",
			"Plasterboard fixing and finishing",
			"Waterproofing membrane application",
			"Tile bed preparation and installation",
			"Wall and floor tiling (as per specifications)",
			"Grout and silicone application",
		},
	},
	{
		title: "STAGE 3: COMPLETION & HANDOVER",
		tasks: []string{
			"Fixture and fitting installation",
			"Electrical and plumbing connections",
			"Painting and final finishes",
			"Accessory installation",
			"Professional cleaning",
			"Quality inspection and testing",
			"Project handover and documentation",
		},
	},
}

func scopeOfWorksRows() []core.Row {
	rows := []core.Row{sectionHeaderRow("DETAILED SCOPE OF WORKS")}
	for _, stage := range workStages {
		rows = append(rows, subHeaderRow(stage.title))
		for _, task := range stage.tasks {
			rows = append(rows, bodyRow(5, task))
		}
	}
	return rows
}

func investmentRows(breakdown []entities.CostBreakdown, total float64) []core.Row {
	rows := []core.Row{sectionHeaderRow("INVESTMENT BREAKDOWN")}
	rows = append(rows, breakdownTableRows(breakdown, total)...)
	return rows
}

func breakdownTableRows(breakdown []entities.CostBreakdown, total float64) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			text.NewCol(3, "Component", props.Text{Size: 9, Style: fontstyle.Bold, Color: &headerWhite}),
			text.NewCol(6, "Description", props.Text{Size: 9, Style: fontstyle.Bold, Color: &headerWhite}),
			text.NewCol(3, "Investment", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: &headerWhite}),
		).WithStyle(&props.Cell{BackgroundColor: &brandBlue}),
	}

	for _, item := range breakdown {
		rows = append(rows, row.New(7).Add(
			text.NewCol(3, item.Component, props.Text{Size: 9, Color: &bodyGrey}),
			text.NewCol(6, truncateNotes(item.Notes), props.Text{Size: 9, Color: &bodyGrey}),
			text.NewCol(3, pkg.FormatCurrency(item.EstimatedCost), props.Text{Size: 9, Align: align.Right, Color: &bodyGrey}),
		))
	}

	rows = append(rows, row.New(8).Add(
		text.NewCol(9, "TOTAL PROJECT INVESTMENT", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: &brandBlue}),
		text.NewCol(3, pkg.FormatCurrency(total), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: &brandBlue}),
	).WithStyle(&props.Cell{BackgroundColor: &paleBlueBg}))
	return rows
}

func termsRows() []core.Row {
	return []core.Row{
		sectionHeaderRow("TERMS & CONDITIONS"),
		subHeaderRow("Payment Terms"),
		bodyRow(5, "10% deposit upon acceptance of proposal"),
		bodyRow(5, "40% progress payment at completion of Stage 1"),
		bodyRow(5, "40% progress payment at completion of Stage 2"),
		bodyRow(5, "10% final payment upon project completion"),
		subHeaderRow("Project Timeline"),
		bodyRow(5, "Estimated completion: 2-3 weeks from commencement"),
		bodyRow(5, "Weather and unforeseen circumstances may affect timeline"),
		bodyRow(5, "Client will be notified of any delays immediately"),
		subHeaderRow("Warranty & Guarantee"),
		bodyRow(5, "12 months warranty on all workmanship"),
		bodyRow(5, "Manufacturer warranty applies to all supplied products"),
		bodyRow(5, "7-year structural warranty where applicable"),
		subHeaderRow("Variations & Changes"),
		bodyRow(5, "All variations must be agreed in writing"),
		bodyRow(5, "Additional costs will be quoted separately"),
		bodyRow(5, "Client approval required before proceeding with variations"),
		subHeaderRow("Important Notes"),
		bodyRow(5, "This proposal is valid for 30 days from issue date"),
		bodyRow(5, "All work complies with current building codes and regulations"),
		bodyRow(5, "Permits and approvals are the responsibility of the client"),
		bodyRow(5, "Access to water and electricity required during construction"),
	}
}

func contactRows(profile entities.UserProfile) []core.Row {
	return []core.Row{
		sectionHeaderRow("CONTACT INFORMATION"),
		bodyRow(5, fmt.Sprintf("Project Manager: %s", orDefault(profile.ContactName, defaultContactName))),
		bodyRow(5, fmt.Sprintf("Phone: %s", orDefault(profile.Phone, "Contact for details"))),
		bodyRow(5, fmt.Sprintf("Email: %s", orDefault(profile.Email, defaultEmail))),
		bodyRow(5, fmt.Sprintf("License Number: %s", orDefault(profile.LicenseNumber, defaultLicense))),
		subHeaderRow("Business Hours"),
		bodyRow(5, "Monday - Friday: 7:00 AM - 6:00 PM"),
		bodyRow(5, "Saturday: 8:00 AM - 4:00 PM"),
		bodyRow(5, "Sunday: Emergency calls only"),
		bodyRow(10, "We look forward to working with you on this exciting project. Please don't hesitate to contact us with any questions or to discuss any aspects of this proposal."),
		text.NewRow(14, "Proposal prepared by: _____________________________ Date: _____________", props.Text{
			Size: 10, Color: &bodyGrey, Top: 8,
		}),
	}
}

func sectionHeaderRow(title string) core.Row {
	return row.New(12).Add(
		text.NewCol(12, title, props.Text{Size: 14, Style: fontstyle.Bold, Color: &brandBlue, Top: 3}),
	).WithStyle(&props.Cell{BackgroundColor: &paleBlueBg})
}

func subHeaderRow(title string) core.Row {
	return text.NewRow(8, title, props.Text{Size: 11, Style: fontstyle.Bold, Color: &bodyGrey, Top: 2})
}

func bodyRow(height float64, content string) core.Row {
	return text.NewRow(height, content, props.Text{Size: 10, Color: &bodyGrey})
}

// humanizeKey turns snake_case component keys into display names. Slicing
// happens on decoded runes so multi-byte keys survive intact.
func humanizeKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(first)) + w[size:]
	}
	return strings.Join(words, " ")
}

// truncateNotes caps notes at 60 runes so a long note cannot overflow its
// table cell.
func truncateNotes(notes string) string {
	runes := []rune(notes)
	if len(runes) > 60 {
		return string(runes[:60]) + "..."
	}
	return notes
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
