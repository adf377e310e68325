package interfaces

import (
	"context"
	"time"

	"servicevale/internal/domain/entities"
)

// IAccountRepository abstracts DynamoDB persistence for login accounts.

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
	SetRecovery(ctx context.Context, email, recoveryHash string, expiry time.Time) error
	ClearRecovery(ctx context.Context, email string) error
}
