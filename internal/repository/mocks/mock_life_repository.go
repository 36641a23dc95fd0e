package mocks

import (
	"context"

	"blogapi/internal/model"
	"blogapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockLifeRepository struct {
	mock.Mock
}

func (m *MockLifeRepository) Create(ctx context.Context, e *model.LifeEntry) (*model.LifeEntry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LifeEntry), args.Error(1)
}

func (m *MockLifeRepository) FindByID(ctx context.Context, id int64) (*model.LifeEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LifeEntry), args.Error(1)
}

func (m *MockLifeRepository) Update(ctx context.Context, e *model.LifeEntry) (*model.LifeEntry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LifeEntry), args.Error(1)
}

func (m *MockLifeRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.LifeEntry], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.LifeEntry]), args.Error(1)
}

func (m *MockLifeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLifeRepository) UpdateContentPath(ctx context.Context, id int64, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

func (m *MockLifeRepository) SetPublished(ctx context.Context, id int64, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}
