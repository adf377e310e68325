package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEngineerNotFound   = errors.New("engineer not found")
	ErrInvalidEngineerID  = errors.New("invalid engineer id")
	ErrEngineerEmailTaken = errors.New("engineer email already registered")
)

// IEngineerUseCase exposes the admin-side engineer registry.

type IEngineerUseCase interface {
	Register(ctx context.Context, e entities.Engineer) (entities.Engineer, error)
	GetByID(ctx context.Context, id string) (entities.Engineer, error)
	List(ctx context.Context) ([]entities.Engineer, error)
	Update(ctx context.Context, e entities.Engineer) (entities.Engineer, error)
	Delete(ctx context.Context, id string) error
}

type EngineerUseCase struct {
	repo interfaces.IEngineerRepository
}

var _ IEngineerUseCase = (*EngineerUseCase)(nil)

func NewEngineerUseCase(repo interfaces.IEngineerRepository) *EngineerUseCase {
	return &EngineerUseCase{repo: repo}
}

func (u *EngineerUseCase) Register(ctx context.Context, e entities.Engineer) (entities.Engineer, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))

	// Enforce: one registry entry per login email.
	if existing, err := u.repo.GetByEmail(ctx, e.Email); err != nil {
		return entities.Engineer{}, err
	} else if existing.ID != "" {
		return entities.Engineer{}, ErrEngineerEmailTaken
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Create(ctx, e)
}

func (u *EngineerUseCase) GetByID(ctx context.Context, id string) (entities.Engineer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engineer{}, ErrInvalidEngineerID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Engineer{}, err
	}
	if e.ID == "" {
		return entities.Engineer{}, ErrEngineerNotFound
	}
	return e, nil
}

// List returns all engineers, newest registration first.
func (u *EngineerUseCase) List(ctx context.Context) ([]entities.Engineer, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (u *EngineerUseCase) Update(ctx context.Context, e entities.Engineer) (entities.Engineer, error) {
	existing, err := u.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Engineer{}, err
	}

	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	if e.Email != existing.Email {
		if other, err := u.repo.GetByEmail(ctx, e.Email); err != nil {
			return entities.Engineer{}, err
		} else if other.ID != "" && other.ID != e.ID {
			return entities.Engineer{}, ErrEngineerEmailTaken
		}
	}

	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

// Delete removes the registry entry only. Orders and bills keep their
// engineer snapshot fields untouched.
func (u *EngineerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
