package postgres

import (
	"context"
	"database/sql"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// TagPostgres is a PostgreSQL implementation of repository.TagRepository.
type TagPostgres struct {
	db *sql.DB
}

// NewTagPostgres creates a new TagPostgres repository.
func NewTagPostgres(db *sql.DB) *TagPostgres {
	return &TagPostgres{db: db}
}

var _ repository.TagRepository = (*TagPostgres)(nil)

const tagColumns = `id, name, slug, created_at`

func scanTag(row interface{ Scan(...any) error }) (*model.Tag, error) {
	var t model.Tag
	if err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByName fetches a tag by its unique name.
func (r *TagPostgres) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	const q = `SELECT ` + tagColumns + ` FROM tags WHERE name = $1`
	return scanTag(r.db.QueryRowContext(ctx, q, name))
}

// Create inserts a new tag. A concurrent insert of the same name surfaces
// as the raw unique-constraint violation for the caller to handle.
func (r *TagPostgres) Create(ctx context.Context, name, slug string) (*model.Tag, error) {
	const q = `INSERT INTO tags (name, slug) VALUES ($1, $2) RETURNING ` + tagColumns
	return scanTag(r.db.QueryRowContext(ctx, q, name, slug))
}

// List returns all tags ordered by name.
func (r *TagPostgres) List(ctx context.Context) ([]model.Tag, error) {
	const q = `SELECT ` + tagColumns + ` FROM tags ORDER BY name`
	return r.queryTags(ctx, q)
}

// ListByPost returns the tags currently linked to a post.
func (r *TagPostgres) ListByPost(ctx context.Context, postID int64) ([]model.Tag, error) {
	const q = `
		SELECT t.id, t.name, t.slug, t.created_at
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.id`
	return r.queryTags(ctx, q, postID)
}

// Link adds a post-tag link; re-linking an existing pair is a no-op.
func (r *TagPostgres) Link(ctx context.Context, postID, tagID int64) error {
	const q = `
		INSERT INTO post_tags (post_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, tag_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, q, postID, tagID)
	return err
}

// Unlink removes a single post-tag link. Removing an absent link is a no-op.
func (r *TagPostgres) Unlink(ctx context.Context, postID, tagID int64) error {
	const q = `DELETE FROM post_tags WHERE post_id = $1 AND tag_id = $2`
	_, err := r.db.ExecContext(ctx, q, postID, tagID)
	return err
}

func (r *TagPostgres) queryTags(ctx context.Context, q string, args ...any) ([]model.Tag, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}
