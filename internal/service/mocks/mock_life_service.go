package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapi/internal/model"
	"blogapi/internal/service"
)

type MockLifeService struct {
	mock.Mock
}

func (m *MockLifeService) Create(ctx context.Context, in service.CreateLifeEntryInput) (*model.LifeEntry, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LifeEntry), args.Error(1)
}

func (m *MockLifeService) Get(ctx context.Context, id int64) (*model.LifeEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LifeEntry), args.Error(1)
}

func (m *MockLifeService) Update(ctx context.Context, id int64, in service.UpdateLifeEntryInput) (*model.LifeEntry, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LifeEntry), args.Error(1)
}

func (m *MockLifeService) List(ctx context.Context, limit, offset int) (*service.LifeListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LifeListResult), args.Error(1)
}

func (m *MockLifeService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLifeService) SetPublished(ctx context.Context, id int64, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}
