package repository

import (
	"context"

	"blogapi/internal/model"
)

// SettingRepository defines data access for the key/value settings store.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	Upsert(ctx context.Context, key string, value *string) (*model.Setting, error)
	List(ctx context.Context) ([]model.Setting, error)
}
