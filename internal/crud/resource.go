package crud

import (
	"context"
	"errors"

	"cinema-catalog/internal/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CacheStore invalidates cached responses registered under a tag.
type CacheStore interface {
	EvictByTag(ctx context.Context, tag string) error
}

// FileRemover deletes an externally stored file by its public URL.
type FileRemover interface {
	DeleteFile(ctx context.Context, url, container string) error
}

// Resource is the shared CRUD engine. It is specialized per entity type
// through plain data and functions rather than interface dispatch: an order
// column for listings, a cache tag evicted on every successful mutation, a
// write mapper (creation input -> entity), a read mapper (entity -> read
// model) and identifier accessors. File-backed resources additionally set
// FileURL, Files and Container so Delete can drop the stored object after
// the row is gone.
type Resource[E any, C any, R any] struct {
	DB       *database.Database
	Cache    CacheStore
	CacheTag string
	OrderBy  string
	MapNew   func(C) E
	Project  func(*E) R
	GetID    func(*E) uint
	SetID    func(*E, uint)

	// Optional, for file-backed entities.
	FileURL   func(*E) string
	Files     FileRemover
	Container string

	Logger *logrus.Logger
}

func (r *Resource[E, C, R]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.DB.GetQueryTimeout())
}

// List returns one ascending-ordered page of read models together with the
// total record count computed before pagination is applied.
func (r *Resource[E, C, R]) List(ctx context.Context, p Pagination) ([]R, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.DB.WithContext(ctx).Model(new(E)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []E
	err := r.DB.WithContext(ctx).
		Order(r.OrderBy + " ASC").
		Offset(p.Offset()).
		Limit(p.Limit()).
		Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}

	return r.projectAll(entities), total, nil
}

// ListAll returns every record ordered ascending, without pagination.
func (r *Resource[E, C, R]) ListAll(ctx context.Context) ([]R, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entities []E
	err := r.DB.WithContext(ctx).Order(r.OrderBy + " ASC").Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return r.projectAll(entities), nil
}

func (r *Resource[E, C, R]) Get(ctx context.Context, id uint) (R, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var zero R
	var entity E
	err := r.DB.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return r.Project(&entity), nil
}

// Create persists the mapped entity in one transaction, evicts the resource
// cache tag and returns the read model of the now-identified entity along
// with its identifier.
func (r *Resource[E, C, R]) Create(ctx context.Context, input C) (R, uint, error) {
	return r.CreateWith(ctx, input, nil)
}

// CreateWith behaves like Create but lets the caller adjust the mapped
// entity before it is persisted (e.g. stamping a stored-file URL).
func (r *Resource[E, C, R]) CreateWith(ctx context.Context, input C, prepare func(*E) error) (R, uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var zero R
	entity := r.MapNew(input)
	if prepare != nil {
		if err := prepare(&entity); err != nil {
			return zero, 0, err
		}
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entity).Error
	})
	if err != nil {
		return zero, 0, err
	}

	r.evict(ctx)
	return r.Project(&entity), r.GetID(&entity), nil
}

// Update maps the creation input into a fresh entity stamped with id and
// issues a full save: fields absent from the input reset to their zero
// values instead of being preserved. Absent rows leave the cache untouched.
func (r *Resource[E, C, R]) Update(ctx context.Context, id uint, input C) error {
	return r.UpdateWith(ctx, id, input, nil)
}

// UpdateWith is Update with a pre-persist hook receiving the stored entity
// and the replacement, so callers can carry fields forward (stored file
// URLs) or swap externally stored files.
func (r *Resource[E, C, R]) UpdateWith(ctx context.Context, id uint, input C, prepare func(stored, replacement *E) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stored E
	err := r.DB.WithContext(ctx).First(&stored, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	entity := r.MapNew(input)
	r.SetID(&entity, id)

	if prepare != nil {
		if err := prepare(&stored, &entity); err != nil {
			return err
		}
	}

	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&entity).Error
	})
	if err != nil {
		return err
	}

	r.evict(ctx)
	return nil
}

// Delete removes the row first, then the stored file (best effort), then
// evicts the cache tag. A not-found miss touches neither storage nor cache.
func (r *Resource[E, C, R]) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entity E
	err := r.DB.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&entity).Error
	})
	if err != nil {
		return err
	}

	if r.FileURL != nil && r.Files != nil {
		if url := r.FileURL(&entity); url != "" {
			if err := r.Files.DeleteFile(ctx, url, r.Container); err != nil {
				r.Logger.WithError(err).WithField("url", url).
					Warn("Failed to delete stored file after row removal")
			}
		}
	}

	r.evict(ctx)
	return nil
}

func (r *Resource[E, C, R]) projectAll(entities []E) []R {
	out := make([]R, 0, len(entities))
	for i := range entities {
		out = append(out, r.Project(&entities[i]))
	}
	return out
}

func (r *Resource[E, C, R]) evict(ctx context.Context) {
	if r.Cache == nil {
		return
	}
	if err := r.Cache.EvictByTag(ctx, r.CacheTag); err != nil {
		r.Logger.WithError(err).WithField("tag", r.CacheTag).
			Warn("Failed to evict cache tag")
	}
}
