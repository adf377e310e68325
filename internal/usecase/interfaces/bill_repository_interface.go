package interfaces

import (
	"context"
	"time"

	"servicevale/internal/domain/entities"
)

// IBillRepository abstracts DynamoDB persistence for Bill.
//
// Bills are write-once: there is no update path. ListPaidBetween serves the
// revenue windows via the status-date-index.

type IBillRepository interface {
	Create(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByNumber(ctx context.Context, billNumber string) (entities.Bill, error)
	List(ctx context.Context) ([]entities.Bill, error)
	ListByServiceBoyName(ctx context.Context, name string) ([]entities.Bill, error)
	ListPaidBetween(ctx context.Context, from, to time.Time) ([]entities.Bill, error)
}
