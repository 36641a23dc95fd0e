package mocks

import (
	"context"

	"blogapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(ctx context.Context, name, slug string) (*model.Tag, error) {
	args := m.Called(ctx, name, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) ListByPost(ctx context.Context, postID int64) ([]model.Tag, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) Link(ctx context.Context, postID, tagID int64) error {
	args := m.Called(ctx, postID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) Unlink(ctx context.Context, postID, tagID int64) error {
	args := m.Called(ctx, postID, tagID)
	return args.Error(0)
}
