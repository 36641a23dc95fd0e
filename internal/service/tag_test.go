package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapi/internal/model"
	repomocks "blogapi/internal/repository/mocks"
)

func tagf(id int64, name string) model.Tag {
	return model.Tag{ID: id, Name: name, Slug: name}
}

func TestTagService_SyncCreatesMissingTags(t *testing.T) {
	repo := new(repomocks.MockTagRepository)
	svc := NewTagService(repo)

	repo.On("FindByName", mock.Anything, "go").Return(nil, sql.ErrNoRows).Once()
	repo.On("Create", mock.Anything, "go", "go").Return(&model.Tag{ID: 1, Name: "go", Slug: "go"}, nil)
	existing := tagf(2, "web")
	repo.On("FindByName", mock.Anything, "web").Return(&existing, nil)
	repo.On("ListByPost", mock.Anything, int64(10)).Return([]model.Tag{}, nil)
	repo.On("Link", mock.Anything, int64(10), int64(1)).Return(nil)
	repo.On("Link", mock.Anything, int64(10), int64(2)).Return(nil)

	got, err := svc.Sync(context.Background(), 10, []string{"go", "web"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "go", got[0].Name)
	assert.Equal(t, "go", got[0].Slug)
	assert.Equal(t, "web", got[1].Name)
	repo.AssertExpectations(t)
}

func TestTagService_SyncIdempotent(t *testing.T) {
	repo := new(repomocks.MockTagRepository)
	svc := NewTagService(repo)

	goTag, webTag := tagf(1, "go"), tagf(2, "web")
	repo.On("FindByName", mock.Anything, "go").Return(&goTag, nil)
	repo.On("FindByName", mock.Anything, "web").Return(&webTag, nil)
	repo.On("ListByPost", mock.Anything, int64(10)).Return([]model.Tag{goTag, webTag}, nil)

	got, err := svc.Sync(context.Background(), 10, []string{"go", "web"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertNotCalled(t, "Link", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Unlink", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestTagService_SyncShrinksSet(t *testing.T) {
	repo := new(repomocks.MockTagRepository)
	svc := NewTagService(repo)

	goTag, webTag := tagf(1, "go"), tagf(2, "web")
	repo.On("FindByName", mock.Anything, "go").Return(&goTag, nil)
	repo.On("ListByPost", mock.Anything, int64(10)).Return([]model.Tag{goTag, webTag}, nil)
	repo.On("Unlink", mock.Anything, int64(10), int64(2)).Return(nil)

	got, err := svc.Sync(context.Background(), 10, []string{"go"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	repo.AssertCalled(t, "Unlink", mock.Anything, int64(10), int64(2))
	repo.AssertNotCalled(t, "Link", mock.Anything, mock.Anything, mock.Anything)
}

func TestTagService_SyncEmptyRemovesAll(t *testing.T) {
	repo := new(repomocks.MockTagRepository)
	svc := NewTagService(repo)

	goTag := tagf(1, "go")
	repo.On("ListByPost", mock.Anything, int64(10)).Return([]model.Tag{goTag}, nil)
	repo.On("Unlink", mock.Anything, int64(10), int64(1)).Return(nil)

	got, err := svc.Sync(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	repo.AssertCalled(t, "Unlink", mock.Anything, int64(10), int64(1))
}

func TestTagService_SyncDedupesNames(t *testing.T) {
	repo := new(repomocks.MockTagRepository)
	svc := NewTagService(repo)

	goTag := tagf(1, "go")
	repo.On("FindByName", mock.Anything, "go").Return(&goTag, nil).Once()
	repo.On("ListByPost", mock.Anything, int64(10)).Return([]model.Tag{}, nil)
	repo.On("Link", mock.Anything, int64(10), int64(1)).Return(nil).Once()

	got, err := svc.Sync(context.Background(), 10, []string{"go", "go", "", "go"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
}

func TestTagService_SyncLostInsertRace(t *testing.T) {
	repo := new(repomocks.MockTagRepository)
	svc := NewTagService(repo)

	winner := tagf(5, "go")
	repo.On("FindByName", mock.Anything, "go").Return(nil, sql.ErrNoRows).Once()
	repo.On("Create", mock.Anything, "go", "go").
		Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "tags_name_key"})
	// Re-fetch picks up the row the concurrent writer inserted.
	repo.On("FindByName", mock.Anything, "go").Return(&winner, nil).Once()
	repo.On("ListByPost", mock.Anything, int64(10)).Return([]model.Tag{}, nil)
	repo.On("Link", mock.Anything, int64(10), int64(5)).Return(nil)

	got, err := svc.Sync(context.Background(), 10, []string{"go"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(5), got[0].ID)
}
