package postgres

import (
	"context"
	"database/sql"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

const postColumns = `id, title, summary, content_path, author_id, cover_image,
	is_published, is_protected, password_hash, uploader_name, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Summary,
		&p.ContentPath,
		&p.AuthorID,
		&p.CoverImage,
		&p.IsPublished,
		&p.IsProtected,
		&p.PasswordHash,
		&p.UploaderName,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post row and returns the stored record.
func (r *PostPostgres) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		INSERT INTO posts (title, summary, content_path, author_id, cover_image,
			is_published, is_protected, password_hash, uploader_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + postColumns
	row := r.db.QueryRowContext(ctx, q,
		p.Title,
		p.Summary,
		p.ContentPath,
		p.AuthorID,
		p.CoverImage,
		p.IsPublished,
		p.IsProtected,
		p.PasswordHash,
		p.UploaderName,
	)
	return scanPost(row)
}

// FindByID fetches a single post by its ID.
func (r *PostPostgres) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return scanPost(r.db.QueryRowContext(ctx, q, id))
}

// Update persists the mutable columns and returns the stored record.
func (r *PostPostgres) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		UPDATE posts
		SET title = $2, summary = $3, cover_image = $4, is_published = $5,
			is_protected = $6, password_hash = $7, uploader_name = $8,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + postColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Title,
		p.Summary,
		p.CoverImage,
		p.IsPublished,
		p.IsProtected,
		p.PasswordHash,
		p.UploaderName,
	)
	return scanPost(row)
}

// List returns published posts using LIMIT/OFFSET pagination and a total count.
// A non-empty tagSlug narrows both the page and the count to linked posts.
func (r *PostPostgres) List(ctx context.Context, pq repository.PageQuery, tagSlug string) (*repository.PageResult[model.Post], error) {
	const qCount = `
		SELECT COUNT(*) FROM posts
		WHERE is_published = TRUE
			AND ($1 = '' OR EXISTS (
				SELECT 1 FROM post_tags pt
				JOIN tags t ON t.id = pt.tag_id
				WHERE pt.post_id = posts.id AND t.slug = $1))`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, tagSlug).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + postColumns + ` FROM posts
		WHERE is_published = TRUE
			AND ($1 = '' OR EXISTS (
				SELECT 1 FROM post_tags pt
				JOIN tags t ON t.id = pt.tag_id
				WHERE pt.post_id = posts.id AND t.slug = $1))
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, qList, tagSlug, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Post]{Items: items, Total: total}, nil
}

// Latest returns the most recent published posts.
func (r *PostPostgres) Latest(ctx context.Context, limit int) ([]model.Post, error) {
	const q = `
		SELECT ` + postColumns + ` FROM posts
		WHERE is_published = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Delete removes a post by ID. post_tags rows cascade via their foreign key.
func (r *PostPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM posts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateContentPath overwrites the content pointer. The previous object is
// not removed; that is an accepted operational gap.
func (r *PostPostgres) UpdateContentPath(ctx context.Context, id int64, path string) error {
	const q = `UPDATE posts SET content_path = $2, updated_at = now() WHERE id = $1`
	return execExpectingRow(ctx, r.db, q, id, path)
}

// SetPublished flips the publish flag.
func (r *PostPostgres) SetPublished(ctx context.Context, id int64, published bool) error {
	const q = `UPDATE posts SET is_published = $2, updated_at = now() WHERE id = $1`
	return execExpectingRow(ctx, r.db, q, id, published)
}

// execExpectingRow runs an UPDATE that must touch exactly one row and maps
// "no rows touched" to sql.ErrNoRows for the service layer.
func execExpectingRow(ctx context.Context, db *sql.DB, q string, args ...any) error {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
