package postgres

import (
	"context"
	"database/sql"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

const projectColumns = `id, name, description, demo_url, source_url, cover_image,
	author_id, content_path, is_published, is_protected, password_hash,
	uploader_name, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.DemoURL,
		&p.SourceURL,
		&p.CoverImage,
		&p.AuthorID,
		&p.ContentPath,
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

func (r *ProjectPostgres) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	const q = `
		INSERT INTO projects (name, description, demo_url, source_url, cover_image,
			author_id, content_path, is_published, is_protected, password_hash, uploader_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + projectColumns
	row := r.db.QueryRowContext(ctx, q,
		p.Name,
		p.Description,
		p.DemoURL,
		p.SourceURL,
		p.CoverImage,
		p.AuthorID,
		p.ContentPath,
		p.IsPublished,
		p.IsProtected,
		p.PasswordHash,
		p.UploaderName,
	)
	return scanProject(row)
}

func (r *ProjectPostgres) FindByID(ctx context.Context, id int64) (*model.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRowContext(ctx, q, id))
}

func (r *ProjectPostgres) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	const q = `
		UPDATE projects
		SET name = $2, description = $3, demo_url = $4, source_url = $5,
			cover_image = $6, is_published = $7, is_protected = $8,
			password_hash = $9, uploader_name = $10, updated_at = now()
		WHERE id = $1
		RETURNING ` + projectColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Name,
		p.Description,
		p.DemoURL,
		p.SourceURL,
		p.CoverImage,
		p.IsPublished,
		p.IsProtected,
		p.PasswordHash,
		p.UploaderName,
	)
	return scanProject(row)
}

func (r *ProjectPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Project], error) {
	const qCount = `SELECT COUNT(*) FROM projects WHERE is_published = TRUE`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + projectColumns + ` FROM projects
		WHERE is_published = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Project]{Items: items, Total: total}, nil
}

func (r *ProjectPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM projects WHERE id = $1`
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

func (r *ProjectPostgres) UpdateContentPath(ctx context.Context, id int64, path string) error {
	const q = `UPDATE projects SET content_path = $2, updated_at = now() WHERE id = $1`
	return execExpectingRow(ctx, r.db, q, id, path)
}
