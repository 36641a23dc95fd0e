package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var tagCols = []string{"id", "name", "slug", "created_at"}

func TestTagPostgres_FindByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTagPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tags WHERE name = ?").
			WithArgs("go").
			WillReturnRows(sqlmock.NewRows(tagCols).AddRow(int64(1), "go", "go", time.Now()))

		tag, err := repo.FindByName(ctx, "go")

		assert.NoError(t, err)
		assert.Equal(t, "go", tag.Name)
		assert.Equal(t, "go", tag.Slug)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tags WHERE name = ?").
			WithArgs("rust").
			WillReturnError(sql.ErrNoRows)

		tag, err := repo.FindByName(ctx, "rust")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, tag)
	})
}

func TestTagPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTagPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO tags").
		WithArgs("go", "go").
		WillReturnRows(sqlmock.NewRows(tagCols).AddRow(int64(1), "go", "go", time.Now()))

	tag, err := repo.Create(ctx, "go", "go")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), tag.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagPostgres_Links(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTagPostgres(db)
	ctx := context.Background()

	t.Run("link is idempotent at the statement level", func(t *testing.T) {
		// ON CONFLICT DO NOTHING: second call affects zero rows, still no error.
		mock.ExpectExec("INSERT INTO post_tags").
			WithArgs(int64(5), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO post_tags").
			WithArgs(int64(5), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Link(ctx, 5, 1))
		assert.NoError(t, repo.Link(ctx, 5, 1))
	})

	t.Run("unlink", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM post_tags").
			WithArgs(int64(5), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Unlink(ctx, 5, 2))
	})

	t.Run("list by post", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tags t").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(tagCols).
				AddRow(int64(1), "go", "go", time.Now()).
				AddRow(int64(2), "rust", "rust", time.Now()))

		tags, err := repo.ListByPost(ctx, 5)

		assert.NoError(t, err)
		assert.Len(t, tags, 2)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
