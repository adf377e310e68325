package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
)

// INotificationUseCase exposes the in-app notification feed. Admins see the
// whole feed; engineers see only notifications addressed to them.

type INotificationUseCase interface {
	List(ctx context.Context, email string, role entities.Role) ([]entities.Notification, error)
	UnreadCount(ctx context.Context, email string, role entities.Role) (int, error)
	MarkRead(ctx context.Context, id string) error
	DeleteForRecipient(ctx context.Context, email string) (int, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) List(ctx context.Context, email string, role entities.Role) ([]entities.Notification, error) {
	items, err := u.fetch(ctx, email, role)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context, email string, role entities.Role) (int, error) {
	items, err := u.fetch(ctx, email, role)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range items {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNotificationID
	}
	return u.repo.MarkRead(ctx, id)
}

// DeleteForRecipient clears the recipient's whole feed and reports how many
// notifications went away.
func (u *NotificationUseCase) DeleteForRecipient(ctx context.Context, email string) (int, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return 0, ErrInvalidAccountEmail
	}
	return u.repo.DeleteByUserEmail(ctx, email)
}

func (u *NotificationUseCase) fetch(ctx context.Context, email string, role entities.Role) ([]entities.Notification, error) {
	if role == entities.RoleAdmin {
		return u.repo.ListAll(ctx)
	}
	return u.repo.ListByUserEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}
