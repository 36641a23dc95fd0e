package repository

import (
	"context"

	"blogapi/internal/model"
)

// TagRepository defines data access for tags and post-tag links.
// The tags.name and tags.slug columns carry unique constraints; Create
// surfaces the raw constraint violation so callers can treat "someone else
// won the insert race" as a retry, not a fatal error.
type TagRepository interface {
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	Create(ctx context.Context, name, slug string) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)

	// ListByPost returns the tags currently linked to a post.
	ListByPost(ctx context.Context, postID int64) ([]model.Tag, error)

	// Link adds a post-tag link. Linking an already-linked pair is a no-op;
	// the join table enforces set semantics.
	Link(ctx context.Context, postID, tagID int64) error

	// Unlink removes a single post-tag link.
	Unlink(ctx context.Context, postID, tagID int64) error
}
