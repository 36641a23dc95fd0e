package repository

import (
	"context"

	"blogapi/internal/model"
)

// PostRepository defines data access for posts using SQL queries only.
// No business logic here — strictly persistence operations.
type PostRepository interface {
	// Create inserts a new post row and returns the stored record.
	Create(ctx context.Context, p *model.Post) (*model.Post, error)

	// FindByID returns a post by its ID, published or not.
	FindByID(ctx context.Context, id int64) (*model.Post, error)

	// Update persists the mutable columns of p and returns the stored record.
	Update(ctx context.Context, p *model.Post) (*model.Post, error)

	// List returns published posts, newest first. A non-empty tagSlug
	// restricts the result to posts linked to that tag.
	List(ctx context.Context, pq PageQuery, tagSlug string) (*PageResult[model.Post], error)

	// Latest returns the most recent published posts.
	Latest(ctx context.Context, limit int) ([]model.Post, error)

	// Delete removes a post by ID. Tag links cascade at the storage layer;
	// the content object is intentionally left behind.
	Delete(ctx context.Context, id int64) error

	// UpdateContentPath overwrites the content pointer in a single statement
	// so readers never observe a partially updated row.
	UpdateContentPath(ctx context.Context, id int64, path string) error

	// SetPublished flips the publish flag.
	SetPublished(ctx context.Context, id int64, published bool) error
}
