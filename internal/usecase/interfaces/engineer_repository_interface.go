package interfaces

import (
	"context"
	"servicevale/internal/domain/entities"
)

// IEngineerRepository abstracts DynamoDB persistence for Engineer.
//
// The admin app must be able to:
//   - register an engineer with verified identity documents
//   - look one up by id or by login email
//   - edit the profile and remove an engineer (no cascade to past orders)

type IEngineerRepository interface {
	Create(ctx context.Context, e entities.Engineer) (entities.Engineer, error)
	GetByID(ctx context.Context, id string) (entities.Engineer, error)
	GetByEmail(ctx context.Context, email string) (entities.Engineer, error)
	List(ctx context.Context) ([]entities.Engineer, error)
	Update(ctx context.Context, e entities.Engineer) (entities.Engineer, error)
	Delete(ctx context.Context, id string) error
}
