package interfaces

import (
	"context"
	"servicevale/internal/domain/entities"
)

// IPhotoSetRepository abstracts DynamoDB persistence for PhotoSet.

type IPhotoSetRepository interface {
	Create(ctx context.Context, p entities.PhotoSet) (entities.PhotoSet, error)
	GetByID(ctx context.Context, id string) (entities.PhotoSet, error)
	Update(ctx context.Context, p entities.PhotoSet) (entities.PhotoSet, error)
	List(ctx context.Context) ([]entities.PhotoSet, error)
	Delete(ctx context.Context, id string) error
}
