package repository

import (
	"context"

	"blogapi/internal/model"
)

// ProjectRepository defines data access for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) (*model.Project, error)
	FindByID(ctx context.Context, id int64) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) (*model.Project, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Project], error)
	Delete(ctx context.Context, id int64) error
	UpdateContentPath(ctx context.Context, id int64, path string) error
}
