package interfaces

import (
	"context"
	"servicevale/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListAll(ctx context.Context) ([]entities.Notification, error)
	ListByUserEmail(ctx context.Context, email string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) error
	DeleteByUserEmail(ctx context.Context, email string) (int, error)
}
