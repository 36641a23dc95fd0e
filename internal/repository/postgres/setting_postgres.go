package postgres

import (
	"context"
	"database/sql"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// SettingPostgres is a PostgreSQL implementation of repository.SettingRepository.
type SettingPostgres struct {
	db *sql.DB
}

// NewSettingPostgres creates a new SettingPostgres repository.
func NewSettingPostgres(db *sql.DB) *SettingPostgres {
	return &SettingPostgres{db: db}
}

var _ repository.SettingRepository = (*SettingPostgres)(nil)

const settingColumns = `id, key, value`

func scanSetting(row interface{ Scan(...any) error }) (*model.Setting, error) {
	var s model.Setting
	if err := row.Scan(&s.ID, &s.Key, &s.Value); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingPostgres) Get(ctx context.Context, key string) (*model.Setting, error) {
	const q = `SELECT ` + settingColumns + ` FROM settings WHERE key = $1`
	return scanSetting(r.db.QueryRowContext(ctx, q, key))
}

// Upsert creates or overwrites a setting value in a single statement.
func (r *SettingPostgres) Upsert(ctx context.Context, key string, value *string) (*model.Setting, error) {
	const q = `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		RETURNING ` + settingColumns
	return scanSetting(r.db.QueryRowContext(ctx, q, key, value))
}

func (r *SettingPostgres) List(ctx context.Context) ([]model.Setting, error) {
	const q = `SELECT ` + settingColumns + ` FROM settings ORDER BY key`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Setting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}
