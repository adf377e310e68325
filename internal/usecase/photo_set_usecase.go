package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPhotoSetNotFound  = errors.New("photo set not found")
	ErrInvalidPhotoSetID = errors.New("invalid photo set id")
	ErrInvalidPhotoSide  = errors.New("invalid photo side, want before or after")
	ErrPhotoSideTaken    = errors.New("photo side already uploaded")
)

const (
	PhotoSideBefore = "before"
	PhotoSideAfter  = "after"

	photoListLimit = 50
)

// UploadPhotoInput carries one uploaded image. An empty SetID opens a new
// set with a single side; a SetID patches the missing side of an open set.
type UploadPhotoInput struct {
	SetID        string
	Side         string
	ContentType  string
	Body         io.Reader
	EngineerName string
	Notes        string
}

// PhotoSetView is a photo set with its image ids resolved to view URLs.
type PhotoSetView struct {
	entities.PhotoSet
	BeforeURL string `json:"beforeUrl,omitempty"`
	AfterURL  string `json:"afterUrl,omitempty"`
}

// IPhotoSetUseCase exposes the before/after work-photo flow.

type IPhotoSetUseCase interface {
	Upload(ctx context.Context, in UploadPhotoInput) (PhotoSetView, error)
	List(ctx context.Context) ([]PhotoSetView, error)
	SaveAndRemove(ctx context.Context, id string) error
}

type PhotoSetUseCase struct {
	repo    interfaces.IPhotoSetRepository
	storage interfaces.IObjectStorage
	log     *logrus.Logger
}

var _ IPhotoSetUseCase = (*PhotoSetUseCase)(nil)

func NewPhotoSetUseCase(repo interfaces.IPhotoSetRepository, storage interfaces.IObjectStorage, log *logrus.Logger) *PhotoSetUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PhotoSetUseCase{repo: repo, storage: storage, log: log}
}

func (u *PhotoSetUseCase) Upload(ctx context.Context, in UploadPhotoInput) (PhotoSetView, error) {
	if in.Side != PhotoSideBefore && in.Side != PhotoSideAfter {
		return PhotoSetView{}, ErrInvalidPhotoSide
	}

	imageID := uuid.NewString()
	if err := u.storage.Put(ctx, imageID, in.ContentType, in.Body); err != nil {
		return PhotoSetView{}, err
	}

	if in.SetID == "" {
		p := entities.PhotoSet{
			ID:    uuid.NewString(),
			Notes: fmt.Sprintf("%s\n%s", strings.TrimSpace(in.EngineerName), strings.TrimSpace(in.Notes)),
			Date:  time.Now().UTC(),
		}
		setSide(&p, in.Side, imageID)
		created, err := u.repo.Create(ctx, p)
		if err != nil {
			u.deleteObject(ctx, imageID)
			return PhotoSetView{}, err
		}
		return u.view(created), nil
	}

	p, err := u.getByID(ctx, in.SetID)
	if err != nil {
		u.deleteObject(ctx, imageID)
		return PhotoSetView{}, err
	}
	if sideOf(p, in.Side) != "" {
		u.deleteObject(ctx, imageID)
		return PhotoSetView{}, ErrPhotoSideTaken
	}
	setSide(&p, in.Side, imageID)
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		u.deleteObject(ctx, imageID)
		// The set can be removed between the read and the update.
		if errors.Is(err, interfaces.ErrNotFound) {
			return PhotoSetView{}, ErrPhotoSetNotFound
		}
		return PhotoSetView{}, err
	}
	return u.view(updated), nil
}

// List returns the most recent photo sets, newest first, capped at the
// gallery page size. The cap is applied after sorting so it always keeps the
// newest sets, not an arbitrary storage page.
func (u *PhotoSetUseCase) List(ctx context.Context) ([]PhotoSetView, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	if len(items) > photoListLimit {
		items = items[:photoListLimit]
	}
	views := make([]PhotoSetView, 0, len(items))
	for _, p := range items {
		views = append(views, u.view(p))
	}
	return views, nil
}

// SaveAndRemove deletes the stored image objects and then the set document.
// The document survives if an object delete fails, so nothing is orphaned in
// the bucket.
func (u *PhotoSetUseCase) SaveAndRemove(ctx context.Context, id string) error {
	p, err := u.getByID(ctx, id)
	if err != nil {
		return err
	}

	for _, imageID := range []string{p.BeforeImageID, p.AfterImageID} {
		if imageID == "" {
			continue
		}
		if err := u.storage.Delete(ctx, imageID); err != nil {
			return fmt.Errorf("deleting image %s: %w", imageID, err)
		}
	}
	return u.repo.Delete(ctx, p.ID)
}

func (u *PhotoSetUseCase) getByID(ctx context.Context, id string) (entities.PhotoSet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PhotoSet{}, ErrInvalidPhotoSetID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PhotoSet{}, err
	}
	if p.ID == "" {
		return entities.PhotoSet{}, ErrPhotoSetNotFound
	}
	return p, nil
}

func (u *PhotoSetUseCase) view(p entities.PhotoSet) PhotoSetView {
	v := PhotoSetView{PhotoSet: p}
	if p.BeforeImageID != "" {
		v.BeforeURL = u.storage.URL(p.BeforeImageID)
	}
	if p.AfterImageID != "" {
		v.AfterURL = u.storage.URL(p.AfterImageID)
	}
	return v
}

// deleteObject cleans up an orphaned upload after a failed document write.
func (u *PhotoSetUseCase) deleteObject(ctx context.Context, imageID string) {
	if err := u.storage.Delete(ctx, imageID); err != nil {
		u.log.WithError(err).WithField("image_id", imageID).Warn("orphaned upload cleanup failed")
	}
}

func sideOf(p entities.PhotoSet, side string) string {
	if side == PhotoSideBefore {
		return p.BeforeImageID
	}
	return p.AfterImageID
}

func setSide(p *entities.PhotoSet, side, imageID string) {
	if side == PhotoSideBefore {
		p.BeforeImageID = imageID
		return
	}
	p.AfterImageID = imageID
}
