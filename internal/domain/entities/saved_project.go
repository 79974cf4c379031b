package entities

import "time"

// SavedProject is a user-named bookmark over a quote.
//
// Storage model (DynamoDB):
//   - table: saved_projects
//   - PK: id
//
// RequestData is a full denormalized snapshot of the originating request so a
// project reloads without touching the quote_requests table. The snapshot is
// frozen at save time: it does not track later changes to the original
// request. ProjectName, Category and Notes are mutable via update; everything
// else is fixed at save time.
type SavedProject struct {
	ID          string            `json:"id"`
	ProjectName string            `json:"project_name"`
	Category    string            `json:"category"`
	QuoteID     string            `json:"quote_id"`
	ClientName  string            `json:"client_name"`
	TotalCost   float64           `json:"total_cost"`
	RequestData RenovationRequest `json:"request_data"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// SavedProjectUpdate is the partial-merge payload for project updates. Nil
// fields are left untouched in storage.
type SavedProjectUpdate struct {
	ProjectName *string `json:"project_name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}
