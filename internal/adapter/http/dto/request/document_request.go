package request

import "bathroom_quote_saver/internal/domain/entities"

type UserProfileRequest struct {
	CompanyName       string `json:"company_name"`
	ContactName       string `json:"contact_name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	LicenseNumber     string `json:"license_number"`
	YearsExperience   string `json:"years_experience"`
	ProjectsCompleted string `json:"projects_completed"`
}

func (r UserProfileRequest) ToEntity() entities.UserProfile {
	return entities.UserProfile{
		CompanyName:       r.CompanyName,
		ContactName:       r.ContactName,
		Phone:             r.Phone,
		Email:             r.Email,
		LicenseNumber:     r.LicenseNumber,
		YearsExperience:   r.YearsExperience,
		ProjectsCompleted: r.ProjectsCompleted,
	}
}

// GenerateProposalRequest carries optional branding and screen-edited
// costs for PDF generation. Every field may be absent; the stored quote
// values are the defaults.
type GenerateProposalRequest struct {
	UserProfile   UserProfileRequest `json:"user_profile"`
	AdjustedCosts map[string]float64 `json:"adjusted_costs"`
	AdjustedTotal *float64           `json:"adjusted_total"`
}

func (r GenerateProposalRequest) Overrides() entities.CostOverrides {
	return entities.CostOverrides{
		Costs: r.AdjustedCosts,
		Total: r.AdjustedTotal,
	}
}

// GenerateSummaryRequest adds the breakdown toggle; omitted means true.
type GenerateSummaryRequest struct {
	UserProfile      UserProfileRequest `json:"user_profile"`
	AdjustedCosts    map[string]float64 `json:"adjusted_costs"`
	AdjustedTotal    *float64           `json:"adjusted_total"`
	IncludeBreakdown *bool              `json:"include_breakdown"`
}

func (r GenerateSummaryRequest) Overrides() entities.CostOverrides {
	return entities.CostOverrides{
		Costs: r.AdjustedCosts,
		Total: r.AdjustedTotal,
	}
}

func (r GenerateSummaryRequest) BreakdownEnabled() bool {
	if r.IncludeBreakdown == nil {
		return true
	}
	return *r.IncludeBreakdown
}
