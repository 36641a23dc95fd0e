package service

import (
	"context"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// SettingService exposes the key/value settings store.
type SettingService interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	Set(ctx context.Context, key string, value *string) (*model.Setting, error)
	List(ctx context.Context) ([]model.Setting, error)
}

type settingService struct {
	repo repository.SettingRepository
}

var _ SettingService = (*settingService)(nil)

func NewSettingService(repo repository.SettingRepository) SettingService {
	return &settingService{repo: repo}
}

func (s *settingService) Get(ctx context.Context, key string) (*model.Setting, error) {
	st, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return st, nil
}

func (s *settingService) Set(ctx context.Context, key string, value *string) (*model.Setting, error) {
	return s.repo.Upsert(ctx, key, value)
}

func (s *settingService) List(ctx context.Context) ([]model.Setting, error) {
	return s.repo.List(ctx)
}
