package request

import "bathroom_quote_saver/internal/domain/entities"

// SaveProjectRequest names a generated quote so it can be found again
// later. The full renovation request is snapshotted server side.
type SaveProjectRequest struct {
	ProjectName string `json:"project_name" binding:"required"`
	Category    string `json:"category"`
	QuoteID     string `json:"quote_id" binding:"required"`
	Notes       string `json:"notes"`
}

func (r SaveProjectRequest) ToEntity() entities.SavedProject {
	return entities.SavedProject{
		ProjectName: r.ProjectName,
		Category:    r.Category,
		QuoteID:     r.QuoteID,
		Notes:       r.Notes,
	}
}

// UpdateProjectRequest carries a partial update; absent fields keep
// their stored value.
type UpdateProjectRequest struct {
	ProjectName *string `json:"project_name"`
	Category    *string `json:"category"`
	Notes       *string `json:"notes"`
}

func (r UpdateProjectRequest) ToUpdate() entities.SavedProjectUpdate {
	return entities.SavedProjectUpdate{
		ProjectName: r.ProjectName,
		Category:    r.Category,
		Notes:       r.Notes,
	}
}

func (r UpdateProjectRequest) IsEmpty() bool {
	return r.ProjectName == nil && r.Category == nil && r.Notes == nil
}
