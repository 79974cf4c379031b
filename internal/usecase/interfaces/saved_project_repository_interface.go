package interfaces

import (
	"context"

	"bathroom_quote_saver/internal/domain/entities"
)

// ISavedProjectRepository abstracts DynamoDB persistence for SavedProject.
//
// List filters on category equality when category is non-empty and returns
// projects sorted by updated_at descending. Update merges only the non-nil
// fields and bumps updated_at; it returns a zero-value project when the id
// does not exist.

type ISavedProjectRepository interface {
	Create(ctx context.Context, p entities.SavedProject) (entities.SavedProject, error)
	GetByID(ctx context.Context, id string) (entities.SavedProject, error)
	List(ctx context.Context, category string) ([]entities.SavedProject, error)
	Update(ctx context.Context, id string, fields entities.SavedProjectUpdate) (entities.SavedProject, error)
	Delete(ctx context.Context, id string) error
	DistinctCategories(ctx context.Context) ([]string, error)
}
