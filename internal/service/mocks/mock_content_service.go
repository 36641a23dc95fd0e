package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"blogapi/internal/model"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Access(ctx context.Context, kind model.Kind, id int64, password string) (string, error) {
	args := m.Called(ctx, kind, id, password)
	return args.String(0), args.Error(1)
}

func (m *MockContentService) Content(ctx context.Context, kind model.Kind, id int64, token string) (string, error) {
	args := m.Called(ctx, kind, id, token)
	return args.String(0), args.Error(1)
}

func (m *MockContentService) ContentHTML(ctx context.Context, kind model.Kind, id int64, token string) (string, error) {
	args := m.Called(ctx, kind, id, token)
	return args.String(0), args.Error(1)
}

func (m *MockContentService) UploadMarkdown(ctx context.Context, kind model.Kind, id int64, r io.Reader, size int64) (string, error) {
	args := m.Called(ctx, kind, id, r, size)
	return args.String(0), args.Error(1)
}

func (m *MockContentService) Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, filename, r, size)
	return args.String(0), args.String(1), args.Error(2)
}
