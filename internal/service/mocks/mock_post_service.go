package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapi/internal/model"
	"blogapi/internal/service"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Create(ctx context.Context, in service.CreatePostInput) (*model.Post, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, id int64, in service.UpdatePostInput) (*model.Post, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) List(ctx context.Context, limit, offset int, tagSlug string) (*service.PostListResult, error) {
	args := m.Called(ctx, limit, offset, tagSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostListResult), args.Error(1)
}

func (m *MockPostService) Latest(ctx context.Context, limit int) ([]model.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostService) SetPublished(ctx context.Context, id int64, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}
