package entities

// UserProfile is the company branding supplied per PDF/email generation call.
// It has no independent lifecycle and is never persisted by this service.
// YearsExperience and ProjectsCompleted are display strings ("15+", "500+").
type UserProfile struct {
	CompanyName       string `json:"company_name"`
	ContactName       string `json:"contact_name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	LicenseNumber     string `json:"license_number"`
	YearsExperience   string `json:"years_experience"`
	ProjectsCompleted string `json:"projects_completed"`
}
