package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicevale/internal/domain/entities"
	mock_interfaces "servicevale/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newEngineerUseCase(t *testing.T) (*EngineerUseCase, *mock_interfaces.MockIEngineerRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIEngineerRepository(ctrl)
	return NewEngineerUseCase(repo), repo
}

func TestEngineerUseCase_Register(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		uc, repo := newEngineerUseCase(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "ramesh@vale.in").Return(entities.Engineer{ID: "existing"}, nil)

		_, err := uc.Register(context.Background(), entities.Engineer{Name: "Ramesh", Email: "Ramesh@Vale.in"})
		if !errors.Is(err, ErrEngineerEmailTaken) {
			t.Fatalf("expected ErrEngineerEmailTaken, got %v", err)
		}
	})

	t.Run("success normalizes email and stamps the record", func(t *testing.T) {
		uc, repo := newEngineerUseCase(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "ramesh@vale.in").Return(entities.Engineer{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Engineer{})).DoAndReturn(
			func(_ context.Context, e entities.Engineer) (entities.Engineer, error) {
				if e.ID == "" || e.Email != "ramesh@vale.in" {
					t.Fatalf("unexpected engineer: %+v", e)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatal("expected timestamps")
				}
				return e, nil
			},
		)

		got, err := uc.Register(context.Background(), entities.Engineer{Name: " Ramesh ", Email: " Ramesh@Vale.in "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Ramesh" {
			t.Fatalf("expected trimmed name, got %q", got.Name)
		}
	})
}

func TestEngineerUseCase_List(t *testing.T) {
	uc, repo := newEngineerUseCase(t)
	now := time.Now()
	repo.EXPECT().List(gomock.Any()).Return([]entities.Engineer{
		{ID: "old", CreatedAt: now.Add(-time.Hour)},
		{ID: "new", CreatedAt: now},
	}, nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "new" || got[1].ID != "old" {
		t.Fatalf("expected newest first, got %v %v", got[0].ID, got[1].ID)
	}
}

func TestEngineerUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newEngineerUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engineer{}, nil)

		_, err := uc.Update(context.Background(), entities.Engineer{ID: "eng-1"})
		if !errors.Is(err, ErrEngineerNotFound) {
			t.Fatalf("expected ErrEngineerNotFound, got %v", err)
		}
	})

	t.Run("email change checks for collisions", func(t *testing.T) {
		uc, repo := newEngineerUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engineer{ID: "eng-1", Email: "old@vale.in"}, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "new@vale.in").Return(entities.Engineer{ID: "eng-2"}, nil)

		_, err := uc.Update(context.Background(), entities.Engineer{ID: "eng-1", Email: "new@vale.in"})
		if !errors.Is(err, ErrEngineerEmailTaken) {
			t.Fatalf("expected ErrEngineerEmailTaken, got %v", err)
		}
	})

	t.Run("success keeps the original creation time", func(t *testing.T) {
		uc, repo := newEngineerUseCase(t)
		created := time.Now().Add(-48 * time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engineer{
			ID: "eng-1", Email: "ramesh@vale.in", CreatedAt: created,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engineer) (entities.Engineer, error) {
				if !e.CreatedAt.Equal(created) {
					t.Fatal("expected original CreatedAt preserved")
				}
				if !e.UpdatedAt.After(created) {
					t.Fatal("expected fresh UpdatedAt")
				}
				return e, nil
			},
		)

		if _, err := uc.Update(context.Background(), entities.Engineer{
			ID: "eng-1", Email: "ramesh@vale.in", City: "Pune",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEngineerUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newEngineerUseCase(t)
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidEngineerID) {
			t.Fatalf("expected ErrInvalidEngineerID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newEngineerUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engineer{ID: "eng-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "eng-1").Return(nil)

		if err := uc.Delete(context.Background(), "eng-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
