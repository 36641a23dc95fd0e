package repository

import (
	"context"

	"blogapi/internal/model"
)

// LifeRepository defines data access for life-log entries.
type LifeRepository interface {
	Create(ctx context.Context, e *model.LifeEntry) (*model.LifeEntry, error)
	FindByID(ctx context.Context, id int64) (*model.LifeEntry, error)
	Update(ctx context.Context, e *model.LifeEntry) (*model.LifeEntry, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.LifeEntry], error)
	Delete(ctx context.Context, id int64) error
	UpdateContentPath(ctx context.Context, id int64, path string) error
	SetPublished(ctx context.Context, id int64, published bool) error
}
