package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm is the generic GORM-backed repository. Models are keyed by a plain
// uuid `id` column; eager loads are fixed per entity at construction time.
type Gorm[M any] struct {
	db       *gorm.DB
	preloads []string
}

func NewGorm[M any](db *gorm.DB, preloads ...string) *Gorm[M] {
	return &Gorm[M]{db: db, preloads: preloads}
}

func (r *Gorm[M]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *Gorm[M]) List(ctx context.Context) ([]M, error) {
	var out []M
	if err := r.query(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns (nil, nil) for an absent row; absence is not an error
// at this layer.
func (r *Gorm[M]) GetByID(ctx context.Context, id uuid.UUID) (*M, error) {
	var m M
	if err := r.query(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// writes never touch preloaded associations; only the row itself
func (r *Gorm[M]) Create(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *Gorm[M]) Update(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *Gorm[M]) Delete(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Delete(m).Error
}
