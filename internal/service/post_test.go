package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapi/internal/auth"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	repomocks "blogapi/internal/repository/mocks"
)

func newPostFixture() (*repomocks.MockPostRepository, *repomocks.MockTagRepository, PostService) {
	posts := new(repomocks.MockPostRepository)
	tags := new(repomocks.MockTagRepository)
	return posts, tags, NewPostService(posts, NewTagService(tags))
}

func TestPostService_CreatePlain(t *testing.T) {
	posts, _, svc := newPostFixture()

	posts.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
		return p.Title == "hello" && !p.IsProtected && p.PasswordHash == nil
	})).Return(&model.Post{ID: 1, Title: "hello"}, nil)

	got, err := svc.Create(context.Background(), CreatePostInput{Title: "hello", AuthorID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestPostService_CreateWithPassword(t *testing.T) {
	posts, _, svc := newPostFixture()

	var stored *model.Post
	posts.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
		stored = p
		return p.IsProtected && p.PasswordHash != nil && *p.PasswordHash != "s3cr3t"
	})).Return(&model.Post{ID: 2, IsProtected: true}, nil)

	_, err := svc.Create(context.Background(), CreatePostInput{Title: "locked", Password: "s3cr3t"})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, auth.CheckPassword("s3cr3t", *stored.PasswordHash))
}

func TestPostService_CreateWithTags(t *testing.T) {
	posts, tags, svc := newPostFixture()

	posts.On("Create", mock.Anything, mock.Anything).Return(&model.Post{ID: 3}, nil)
	goTag := model.Tag{ID: 1, Name: "go", Slug: "go"}
	tags.On("FindByName", mock.Anything, "go").Return(&goTag, nil)
	tags.On("ListByPost", mock.Anything, int64(3)).Return([]model.Tag{}, nil)
	tags.On("Link", mock.Anything, int64(3), int64(1)).Return(nil)

	got, err := svc.Create(context.Background(), CreatePostInput{Title: "t", Tags: []string{"go"}})
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "go", got.Tags[0].Name)
}

func TestPostService_UpdatePasswordSemantics(t *testing.T) {
	hash, err := auth.HashPassword("old")
	require.NoError(t, err)

	t.Run("nil leaves protection untouched", func(t *testing.T) {
		posts, tags, svc := newPostFixture()
		posts.On("FindByID", mock.Anything, int64(1)).
			Return(&model.Post{ID: 1, IsProtected: true, PasswordHash: &hash}, nil)
		posts.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
			return p.IsProtected && p.PasswordHash != nil && *p.PasswordHash == hash
		})).Return(&model.Post{ID: 1, IsProtected: true, PasswordHash: &hash}, nil)
		tags.On("ListByPost", mock.Anything, int64(1)).Return([]model.Tag{}, nil)

		title := "renamed"
		_, err := svc.Update(context.Background(), 1, UpdatePostInput{Title: &title})
		require.NoError(t, err)
	})

	t.Run("empty string removes protection", func(t *testing.T) {
		posts, tags, svc := newPostFixture()
		posts.On("FindByID", mock.Anything, int64(1)).
			Return(&model.Post{ID: 1, IsProtected: true, PasswordHash: &hash}, nil)
		posts.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
			return !p.IsProtected && p.PasswordHash == nil
		})).Return(&model.Post{ID: 1}, nil)
		tags.On("ListByPost", mock.Anything, int64(1)).Return([]model.Tag{}, nil)

		empty := ""
		_, err := svc.Update(context.Background(), 1, UpdatePostInput{Password: &empty})
		require.NoError(t, err)
	})

	t.Run("new password re-hashes", func(t *testing.T) {
		posts, tags, svc := newPostFixture()
		posts.On("FindByID", mock.Anything, int64(1)).
			Return(&model.Post{ID: 1}, nil)
		posts.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
			return p.IsProtected && p.PasswordHash != nil && auth.CheckPassword("fresh", *p.PasswordHash)
		})).Return(&model.Post{ID: 1, IsProtected: true}, nil)
		tags.On("ListByPost", mock.Anything, int64(1)).Return([]model.Tag{}, nil)

		pw := "fresh"
		_, err := svc.Update(context.Background(), 1, UpdatePostInput{Password: &pw})
		require.NoError(t, err)
	})
}

func TestPostService_UpdateTagSemantics(t *testing.T) {
	goTag := model.Tag{ID: 1, Name: "go", Slug: "go"}

	t.Run("nil leaves tags untouched", func(t *testing.T) {
		posts, tags, svc := newPostFixture()
		posts.On("FindByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1}, nil)
		posts.On("Update", mock.Anything, mock.Anything).Return(&model.Post{ID: 1}, nil)
		tags.On("ListByPost", mock.Anything, int64(1)).Return([]model.Tag{goTag}, nil)

		got, err := svc.Update(context.Background(), 1, UpdatePostInput{})
		require.NoError(t, err)
		assert.Len(t, got.Tags, 1)
		tags.AssertNotCalled(t, "Unlink", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty slice removes all links", func(t *testing.T) {
		posts, tags, svc := newPostFixture()
		posts.On("FindByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1}, nil)
		posts.On("Update", mock.Anything, mock.Anything).Return(&model.Post{ID: 1}, nil)
		tags.On("ListByPost", mock.Anything, int64(1)).Return([]model.Tag{goTag}, nil)
		tags.On("Unlink", mock.Anything, int64(1), int64(1)).Return(nil)

		names := []string{}
		got, err := svc.Update(context.Background(), 1, UpdatePostInput{Tags: &names})
		require.NoError(t, err)
		assert.Empty(t, got.Tags)
		tags.AssertCalled(t, "Unlink", mock.Anything, int64(1), int64(1))
	})
}

func TestPostService_GetNotFound(t *testing.T) {
	posts, _, svc := newPostFixture()
	posts.On("FindByID", mock.Anything, int64(404)).Return(nil, sql.ErrNoRows)

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostService_ListDefaultsAndTags(t *testing.T) {
	posts, tags, svc := newPostFixture()

	goTag := model.Tag{ID: 1, Name: "go", Slug: "go"}
	posts.On("List", mock.Anything, repository.PageQuery{Limit: 10, Offset: 0}, "go").
		Return(&repository.PageResult[model.Post]{Items: []model.Post{{ID: 1}}, Total: 1}, nil)
	tags.On("ListByPost", mock.Anything, int64(1)).Return([]model.Tag{goTag}, nil)

	got, err := svc.List(context.Background(), 0, -3, "go")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
	require.Len(t, got.Items, 1)
	assert.Len(t, got.Items[0].Tags, 1)
}
