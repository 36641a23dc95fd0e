package postgres

import (
	"context"
	"database/sql"
	"time"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, username, email, password_hash, avatar_url, created_at, last_login`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.AvatarURL,
		&u.CreatedAt,
		&u.LastLogin,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Duplicate usernames or emails surface as the
// raw unique-constraint violation.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (username, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q, u.Username, u.Email, u.PasswordHash, u.AvatarURL)
	return scanUser(row)
}

func (r *UserPostgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, username))
}

func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

func (r *UserPostgres) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	const q = `UPDATE users SET last_login = $2 WHERE id = $1`
	return execExpectingRow(ctx, r.db, q, id, at)
}
