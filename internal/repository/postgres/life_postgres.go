package postgres

import (
	"context"
	"database/sql"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// LifePostgres is a PostgreSQL implementation of repository.LifeRepository.
type LifePostgres struct {
	db *sql.DB
}

// NewLifePostgres creates a new LifePostgres repository.
func NewLifePostgres(db *sql.DB) *LifePostgres {
	return &LifePostgres{db: db}
}

var _ repository.LifeRepository = (*LifePostgres)(nil)

const lifeColumns = `id, title, summary, content_path, is_published,
	is_protected, password_hash, created_at, updated_at`

func scanLife(row interface{ Scan(...any) error }) (*model.LifeEntry, error) {
	var e model.LifeEntry
	if err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Summary,
		&e.ContentPath,
		&e.IsPublished,
		&e.IsProtected,
		&e.PasswordHash,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *LifePostgres) Create(ctx context.Context, e *model.LifeEntry) (*model.LifeEntry, error) {
	const q = `
		INSERT INTO life_posts (title, summary, content_path, is_published,
			is_protected, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + lifeColumns
	row := r.db.QueryRowContext(ctx, q,
		e.Title,
		e.Summary,
		e.ContentPath,
		e.IsPublished,
		e.IsProtected,
		e.PasswordHash,
	)
	return scanLife(row)
}

func (r *LifePostgres) FindByID(ctx context.Context, id int64) (*model.LifeEntry, error) {
	const q = `SELECT ` + lifeColumns + ` FROM life_posts WHERE id = $1`
	return scanLife(r.db.QueryRowContext(ctx, q, id))
}

func (r *LifePostgres) Update(ctx context.Context, e *model.LifeEntry) (*model.LifeEntry, error) {
	const q = `
		UPDATE life_posts
		SET title = $2, summary = $3, is_published = $4, is_protected = $5,
			password_hash = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + lifeColumns
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.Title,
		e.Summary,
		e.IsPublished,
		e.IsProtected,
		e.PasswordHash,
	)
	return scanLife(row)
}

func (r *LifePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.LifeEntry], error) {
	const qCount = `SELECT COUNT(*) FROM life_posts WHERE is_published = TRUE`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + lifeColumns + ` FROM life_posts
		WHERE is_published = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LifeEntry, 0)
	for rows.Next() {
		e, err := scanLife(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.LifeEntry]{Items: items, Total: total}, nil
}

func (r *LifePostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM life_posts WHERE id = $1`
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

func (r *LifePostgres) UpdateContentPath(ctx context.Context, id int64, path string) error {
	const q = `UPDATE life_posts SET content_path = $2, updated_at = now() WHERE id = $1`
	return execExpectingRow(ctx, r.db, q, id, path)
}

func (r *LifePostgres) SetPublished(ctx context.Context, id int64, published bool) error {
	const q = `UPDATE life_posts SET is_published = $2, updated_at = now() WHERE id = $1`
	return execExpectingRow(ctx, r.db, q, id, published)
}
