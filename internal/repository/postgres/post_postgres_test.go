package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"blogapi/internal/model"
	"blogapi/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var postCols = []string{"id", "title", "summary", "content_path", "author_id", "cover_image",
	"is_published", "is_protected", "password_hash", "uploader_name", "created_at", "updated_at"}

func postRow(id int64, title string, contentPath *string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(postCols).
		AddRow(id, title, nil, contentPath, int64(1), nil, true, false, nil, nil, now, now)
}

func TestPostPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPostPostgres(db)
	ctx := context.Background()

	p := &model.Post{Title: "hello", AuthorID: 1, IsPublished: true}

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(p.Title, nil, nil, p.AuthorID, nil, p.IsPublished, p.IsProtected, nil, nil).
		WillReturnRows(postRow(1, "hello", nil))

	result, err := repo.Create(ctx, p)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, int64(1), result.ID)
	assert.Nil(t, result.ContentPath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPostPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		path := "markdown/post_5_a1b2c3d4e5f6.md"
		mock.ExpectQuery("SELECT (.+) FROM posts WHERE id = ?").
			WithArgs(int64(5)).
			WillReturnRows(postRow(5, "hello", &path))

		p, err := repo.FindByID(ctx, 5)

		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, int64(5), p.ID)
		assert.Equal(t, path, *p.ContentPath)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM posts WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		p, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, p)
	})
}

func TestPostPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPostPostgres(db)
	ctx := context.Background()

	t.Run("no tag filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM posts").
			WithArgs("").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery("SELECT (.+) FROM posts").
			WithArgs("", 10, 0).
			WillReturnRows(postRow(1, "hello", nil))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0}, "")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("tag filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM posts").
			WithArgs("go").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM posts").
			WithArgs("go", 10, 0).
			WillReturnRows(sqlmock.NewRows(postCols))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0}, "go")

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.Empty(t, res.Items)
	})
}

func TestPostPostgres_UpdateContentPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPostPostgres(db)
	ctx := context.Background()

	t.Run("updates pointer", func(t *testing.T) {
		mock.ExpectExec("UPDATE posts SET content_path").
			WithArgs(int64(5), "markdown/post_5_deadbeef0000.md").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateContentPath(ctx, 5, "markdown/post_5_deadbeef0000.md")
		assert.NoError(t, err)
	})

	t.Run("missing row maps to ErrNoRows", func(t *testing.T) {
		mock.ExpectExec("UPDATE posts SET content_path").
			WithArgs(int64(99), "markdown/post_99_deadbeef0000.md").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateContentPath(ctx, 99, "markdown/post_99_deadbeef0000.md")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPostPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM posts WHERE id = ?").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, 5)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
