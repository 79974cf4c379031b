package response

import (
	"time"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase"
)

type SavedProjectResponse struct {
	ID          string                     `json:"id"`
	ProjectName string                     `json:"project_name"`
	Category    string                     `json:"category"`
	QuoteID     string                     `json:"quote_id"`
	ClientName  string                     `json:"client_name"`
	TotalCost   float64                    `json:"total_cost"`
	RequestData entities.RenovationRequest `json:"request_data"`
	Notes       string                     `json:"notes,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

func FromSavedProject(p entities.SavedProject) SavedProjectResponse {
	return SavedProjectResponse{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		Category:    p.Category,
		QuoteID:     p.QuoteID,
		ClientName:  p.ClientName,
		TotalCost:   p.TotalCost,
		RequestData: p.RequestData,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromSavedProjects(projects []entities.SavedProject) []SavedProjectResponse {
	out := make([]SavedProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromSavedProject(p))
	}
	return out
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type ProjectWithQuoteResponse struct {
	Project SavedProjectResponse       `json:"project"`
	Quote   QuoteResponse              `json:"quote"`
	Request entities.RenovationRequest `json:"request"`
}

func FromProjectWithQuote(pq usecase.ProjectWithQuote) ProjectWithQuoteResponse {
	return ProjectWithQuoteResponse{
		Project: FromSavedProject(pq.Project),
		Quote:   FromQuote(pq.Quote),
		Request: pq.Request,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
