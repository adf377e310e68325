package interfaces

import (
	"context"
	"time"

	"servicevale/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Status moves are separate operations on purpose: MarkCompleted stamps the
// completion time, MarkPending rewrites only the status field and leaves any
// earlier completion timestamp in place.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.ServiceOrder, error)
	MarkCompleted(ctx context.Context, id string, completedAt time.Time) (entities.ServiceOrder, error)
	MarkPending(ctx context.Context, id string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}
