package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound  = errors.New("saved project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrInvalidProject   = errors.New("invalid project payload")
)

// ProjectWithQuote is the composite returned for GET /projects/{id}/quote:
// the bookmark, its quote, and the verbatim request snapshot stored with the
// project (not re-read from the quote_requests table).
type ProjectWithQuote struct {
	Project entities.SavedProject `json:"project"`
	Quote   entities.Quote        `json:"quote"`
	Request entities.RenovationRequest `json:"request"`
}

// IProjectUseCase exposes the saved-project operations:
//   - POST   /projects/save           => SaveProject()
//   - GET    /projects                => ListProjects()
//   - PUT    /projects/{id}           => UpdateProject()
//   - DELETE /projects/{id}           => DeleteProject()
//   - GET    /projects/categories     => Categories()
//   - GET    /projects/{id}/quote     => GetProjectWithQuote()

type IProjectUseCase interface {
	SaveProject(ctx context.Context, p entities.SavedProject) (entities.SavedProject, error)
	ListProjects(ctx context.Context, category string) ([]entities.SavedProject, error)
	UpdateProject(ctx context.Context, id string, fields entities.SavedProjectUpdate) (entities.SavedProject, error)
	DeleteProject(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	GetProjectWithQuote(ctx context.Context, id string) (ProjectWithQuote, error)
}

type ProjectUseCase struct {
	projectRepo interfaces.ISavedProjectRepository
	quoteRepo   interfaces.IQuoteRepository
	requestRepo interfaces.IQuoteRequestRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projectRepo interfaces.ISavedProjectRepository, quoteRepo interfaces.IQuoteRepository, requestRepo interfaces.IQuoteRequestRepository) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo, quoteRepo: quoteRepo, requestRepo: requestRepo}
}

// SaveProject bookmarks a quote under a user-chosen name. The referenced
// quote must exist. The originating renovation request, the client name and
// the quote total are denormalized onto the project at save time, so the
// bookmark stays readable even if the quote or request rows change later.
func (u *ProjectUseCase) SaveProject(ctx context.Context, p entities.SavedProject) (entities.SavedProject, error) {
	p.ProjectName = strings.TrimSpace(p.ProjectName)
	p.QuoteID = strings.TrimSpace(p.QuoteID)
	if p.ProjectName == "" || p.QuoteID == "" {
		return entities.SavedProject{}, ErrInvalidProject
	}

	quote, err := u.quoteRepo.GetByID(ctx, p.QuoteID)
	if err != nil {
		return entities.SavedProject{}, err
	}
	if quote.ID == "" {
		return entities.SavedProject{}, ErrQuoteNotFound
	}

	request, err := u.requestRepo.GetByID(ctx, quote.RequestID)
	if err != nil {
		return entities.SavedProject{}, err
	}

	p.RequestData = request
	p.ClientName = request.ClientInfo.Name
	p.TotalCost = quote.TotalCost

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.projectRepo.Create(ctx, p)
}

func (u *ProjectUseCase) ListProjects(ctx context.Context, category string) ([]entities.SavedProject, error) {
	return u.projectRepo.List(ctx, strings.TrimSpace(category))
}

func (u *ProjectUseCase) UpdateProject(ctx context.Context, id string, fields entities.SavedProjectUpdate) (entities.SavedProject, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SavedProject{}, ErrInvalidProjectID
	}

	updated, err := u.projectRepo.Update(ctx, id, fields)
	if err != nil {
		return entities.SavedProject{}, err
	}
	if updated.ID == "" {
		return entities.SavedProject{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) DeleteProject(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}

	existing, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProjectNotFound
	}
	return u.projectRepo.Delete(ctx, id)
}

func (u *ProjectUseCase) Categories(ctx context.Context) ([]string, error) {
	return u.projectRepo.DistinctCategories(ctx)
}

// GetProjectWithQuote loads a project together with its quote. A dangling
// quote reference is a not-found condition, never an empty quote.
func (u *ProjectUseCase) GetProjectWithQuote(ctx context.Context, id string) (ProjectWithQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProjectWithQuote{}, ErrInvalidProjectID
	}

	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return ProjectWithQuote{}, err
	}
	if project.ID == "" {
		return ProjectWithQuote{}, ErrProjectNotFound
	}

	quote, err := u.quoteRepo.GetByID(ctx, project.QuoteID)
	if err != nil {
		return ProjectWithQuote{}, err
	}
	if quote.ID == "" {
		return ProjectWithQuote{}, ErrQuoteNotFound
	}

	return ProjectWithQuote{
		Project: project,
		Quote:   quote,
		Request: project.RequestData,
	}, nil
}
