package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"bathroom_quote_saver/internal/domain/entities"
	mock_interfaces "bathroom_quote_saver/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_SaveProject(t *testing.T) {
	t.Run("blank project name", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		_, err := uc.SaveProject(context.Background(), entities.SavedProject{ProjectName: "  ", QuoteID: "q-1"})
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("blank quote id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		_, err := uc.SaveProject(context.Background(), entities.SavedProject{ProjectName: "Main Bathroom"})
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("referenced quote missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(nil, quoteRepo, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-gone").Return(entities.Quote{}, nil)

		_, err := uc.SaveProject(context.Background(), entities.SavedProject{ProjectName: "Main Bathroom", QuoteID: "q-gone"})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(nil, quoteRepo, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.SaveProject(context.Background(), entities.SavedProject{ProjectName: "Main Bathroom", QuoteID: "q-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("request repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewProjectUseCase(nil, quoteRepo, requestRepo)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", RequestID: "req-1"}, nil)
		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RenovationRequest{}, errors.New("db-request"))

		_, err := uc.SaveProject(context.Background(), entities.SavedProject{ProjectName: "Main Bathroom", QuoteID: "q-1"})
		if err == nil || err.Error() != "db-request" {
			t.Fatalf("expected db-request error, got %v", err)
		}
	})

	t.Run("success assigns identity and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, quoteRepo, requestRepo)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", RequestID: "req-1"}, nil)
		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RenovationRequest{ID: "req-1"}, nil)
		projectRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SavedProject{})).DoAndReturn(
			func(_ context.Context, p entities.SavedProject) (entities.SavedProject, error) {
				if p.ID == "" {
					t.Fatalf("project id must be assigned")
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("timestamps must be set: %+v", p)
				}
				if p.ProjectName != "Main Bathroom" {
					t.Fatalf("expected trimmed name, got %q", p.ProjectName)
				}
				return p, nil
			},
		)

		saved, err := uc.SaveProject(context.Background(), entities.SavedProject{
			ProjectName: " Main Bathroom ",
			QuoteID:     " q-1 ",
			Category:    "renovation",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.QuoteID != "q-1" || saved.Category != "renovation" {
			t.Fatalf("unexpected project: %+v", saved)
		}
	})

	t.Run("success snapshots request, client name and total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, quoteRepo, requestRepo)

		request := validRequest()
		request.ID = "req-1"
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", RequestID: "req-1", TotalCost: 15000}, nil)
		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)
		projectRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SavedProject{})).DoAndReturn(
			func(_ context.Context, p entities.SavedProject) (entities.SavedProject, error) {
				if !reflect.DeepEqual(p.RequestData, request) {
					t.Fatalf("expected stored request snapshot %+v, got %+v", request, p.RequestData)
				}
				if p.ClientName != request.ClientInfo.Name {
					t.Fatalf("expected client name %q, got %q", request.ClientInfo.Name, p.ClientName)
				}
				if p.TotalCost != 15000 {
					t.Fatalf("expected total cost snapshot 15000, got %v", p.TotalCost)
				}
				return p, nil
			},
		)

		saved, err := uc.SaveProject(context.Background(), entities.SavedProject{
			ProjectName: "Main Bathroom",
			QuoteID:     "q-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.RequestData.ID != "req-1" || saved.ClientName != request.ClientInfo.Name || saved.TotalCost != 15000 {
			t.Fatalf("unexpected saved project: %+v", saved)
		}
	})
}

func TestProjectUseCase_ListAndCategories(t *testing.T) {
	t.Run("list trims category filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, nil, nil)

		expected := []entities.SavedProject{{ID: "p-1"}}
		projectRepo.EXPECT().List(gomock.Any(), "renovation").Return(expected, nil)

		projects, err := uc.ListProjects(context.Background(), " renovation ")
		if err != nil || len(projects) != 1 || projects[0].ID != "p-1" {
			t.Fatalf("unexpected result err=%v projects=%+v", err, projects)
		}
	})

	t.Run("categories pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, nil, nil)

		projectRepo.EXPECT().DistinctCategories(gomock.Any()).Return([]string{"budget", "renovation"}, nil)

		categories, err := uc.Categories(context.Background())
		if err != nil || len(categories) != 2 {
			t.Fatalf("unexpected result err=%v categories=%v", err, categories)
		}
	})
}

func TestProjectUseCase_UpdateProject(t *testing.T) {
	name := "Renamed"

	t.Run("blank id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		_, err := uc.UpdateProject(context.Background(), " ", entities.SavedProjectUpdate{ProjectName: &name})
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, nil, nil)
		projectRepo.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.SavedProject{}, nil)

		_, err := uc.UpdateProject(context.Background(), "missing", entities.SavedProjectUpdate{ProjectName: &name})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, nil, nil)
		projectRepo.EXPECT().Update(gomock.Any(), "p-1", entities.SavedProjectUpdate{ProjectName: &name}).
			Return(entities.SavedProject{ID: "p-1", ProjectName: "Renamed"}, nil)

		updated, err := uc.UpdateProject(context.Background(), " p-1 ", entities.SavedProjectUpdate{ProjectName: &name})
		if err != nil || updated.ProjectName != "Renamed" {
			t.Fatalf("unexpected result err=%v updated=%+v", err, updated)
		}
	})
}

func TestProjectUseCase_DeleteProject(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		if err := uc.DeleteProject(context.Background(), ""); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, nil, nil)
		projectRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.SavedProject{}, nil)

		if err := uc.DeleteProject(context.Background(), "missing"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, nil, nil)
		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.SavedProject{ID: "p-1"}, nil)
		projectRepo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		if err := uc.DeleteProject(context.Background(), " p-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_GetProjectWithQuote(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil, nil)
		_, err := uc.GetProjectWithQuote(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, nil, nil)
		projectRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.SavedProject{}, nil)

		_, err := uc.GetProjectWithQuote(context.Background(), "missing")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("dangling quote reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, quoteRepo, nil)
		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.SavedProject{ID: "p-1", QuoteID: "q-gone"}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-gone").Return(entities.Quote{}, nil)

		_, err := uc.GetProjectWithQuote(context.Background(), "p-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success returns stored snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projectRepo := mock_interfaces.NewMockISavedProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(projectRepo, quoteRepo, nil)

		snapshot := validRequest()
		snapshot.ID = "req-1"
		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.SavedProject{
			ID:          "p-1",
			QuoteID:     "q-1",
			RequestData: snapshot,
		}, nil)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", TotalCost: 4320}, nil)

		result, err := uc.GetProjectWithQuote(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Project.ID != "p-1" || result.Quote.ID != "q-1" {
			t.Fatalf("unexpected composite: %+v", result)
		}
		if result.Request.ID != "req-1" {
			t.Fatalf("expected request snapshot from project, got %+v", result.Request)
		}
	})
}
