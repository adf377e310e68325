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

func newNotificationUseCase(t *testing.T) (*NotificationUseCase, *mock_interfaces.MockINotificationRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	return NewNotificationUseCase(repo), repo
}

func TestNotificationUseCase_List(t *testing.T) {
	now := time.Now()
	feed := []entities.Notification{
		{ID: "old", CreatedAt: now.Add(-time.Hour)},
		{ID: "new", CreatedAt: now},
	}

	t.Run("admin sees the whole feed, newest first", func(t *testing.T) {
		uc, repo := newNotificationUseCase(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(feed, nil)

		got, err := uc.List(context.Background(), "admin@vale.in", entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "new" || got[1].ID != "old" {
			t.Fatalf("unexpected order: %v %v", got[0].ID, got[1].ID)
		}
	})

	t.Run("engineer sees only their feed", func(t *testing.T) {
		uc, repo := newNotificationUseCase(t)
		repo.EXPECT().ListByUserEmail(gomock.Any(), "boy@vale.in").Return(feed, nil)

		if _, err := uc.List(context.Background(), " Boy@Vale.in ", entities.RoleEngineer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_UnreadCount(t *testing.T) {
	uc, repo := newNotificationUseCase(t)
	repo.EXPECT().ListByUserEmail(gomock.Any(), "boy@vale.in").Return([]entities.Notification{
		{ID: "1", IsRead: true},
		{ID: "2"},
		{ID: "3"},
	}, nil)

	count, err := uc.UnreadCount(context.Background(), "boy@vale.in", entities.RoleEngineer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newNotificationUseCase(t)
		if err := uc.MarkRead(context.Background(), " "); !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo := newNotificationUseCase(t)
		repo.EXPECT().MarkRead(gomock.Any(), "not-1").Return(nil)

		if err := uc.MarkRead(context.Background(), "not-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_DeleteForRecipient(t *testing.T) {
	uc, repo := newNotificationUseCase(t)
	repo.EXPECT().DeleteByUserEmail(gomock.Any(), "boy@vale.in").Return(3, nil)

	n, err := uc.DeleteForRecipient(context.Background(), "Boy@Vale.in")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 deleted, got %d", n)
	}
}
