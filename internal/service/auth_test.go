package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapi/internal/auth"
	"blogapi/internal/model"
	repomocks "blogapi/internal/repository/mocks"
)

func newAuthFixture(adminUsername string) (*repomocks.MockUserRepository, *auth.Tokens, AuthService) {
	users := new(repomocks.MockUserRepository)
	tokens := auth.NewTokens("test-secret", time.Hour)
	return users, tokens, NewAuthService(users, tokens, adminUsername)
}

func testUser(t *testing.T, id int64, username, password string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &model.User{ID: id, Username: username, Email: username + "@example.com", PasswordHash: hash}
}

func TestAuthService_Login(t *testing.T) {
	users, tokens, svc := newAuthFixture("admin")
	u := testUser(t, 1, "alice", "hunter2")
	users.On("FindByUsername", mock.Anything, "alice").Return(u, nil)
	users.On("UpdateLastLogin", mock.Anything, int64(1), mock.Anything).Return(nil)

	res, err := svc.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	id, err := tokens.VerifySession(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	users.AssertCalled(t, "UpdateLastLogin", mock.Anything, int64(1), mock.Anything)
}

func TestAuthService_LoginFailures(t *testing.T) {
	users, _, svc := newAuthFixture("admin")
	u := testUser(t, 1, "alice", "hunter2")
	users.On("FindByUsername", mock.Anything, "alice").Return(u, nil)
	users.On("FindByUsername", mock.Anything, "nobody").Return(nil, sql.ErrNoRows)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Register(t *testing.T) {
	users, _, svc := newAuthFixture("admin")
	users.On("FindByUsername", mock.Anything, "bob").Return(nil, sql.ErrNoRows)
	users.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, sql.ErrNoRows)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "bob" && u.PasswordHash != "pw" &&
			auth.CheckPassword("pw", u.PasswordHash)
	})).Return(&model.User{ID: 2, Username: "bob"}, nil)

	got, err := svc.Register(context.Background(), "bob", "bob@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

func TestAuthService_RegisterConflicts(t *testing.T) {
	t.Run("username taken", func(t *testing.T) {
		users, _, svc := newAuthFixture("admin")
		users.On("FindByUsername", mock.Anything, "bob").Return(&model.User{ID: 2}, nil)

		_, err := svc.Register(context.Background(), "bob", "new@example.com", "pw")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("email taken", func(t *testing.T) {
		users, _, svc := newAuthFixture("admin")
		users.On("FindByUsername", mock.Anything, "new").Return(nil, sql.ErrNoRows)
		users.On("FindByEmail", mock.Anything, "bob@example.com").Return(&model.User{ID: 2}, nil)

		_, err := svc.Register(context.Background(), "new", "bob@example.com", "pw")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("lost insert race on email", func(t *testing.T) {
		users, _, svc := newAuthFixture("admin")
		users.On("FindByUsername", mock.Anything, "new").Return(nil, sql.ErrNoRows)
		users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, sql.ErrNoRows)
		users.On("Create", mock.Anything, mock.Anything).
			Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := svc.Register(context.Background(), "new", "new@example.com", "pw")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Identify(t *testing.T) {
	users, tokens, svc := newAuthFixture("admin")
	users.On("FindByID", mock.Anything, int64(1)).
		Return(&model.User{ID: 1, Username: "admin"}, nil)
	users.On("FindByID", mock.Anything, int64(2)).
		Return(&model.User{ID: 2, Username: "alice"}, nil)

	adminTok, err := tokens.IssueSession(1)
	require.NoError(t, err)
	p, err := svc.Identify(context.Background(), adminTok)
	require.NoError(t, err)
	assert.True(t, p.IsAdmin)

	userTok, err := tokens.IssueSession(2)
	require.NoError(t, err)
	p, err = svc.Identify(context.Background(), userTok)
	require.NoError(t, err)
	assert.False(t, p.IsAdmin)

	_, err = svc.Identify(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_IsAdmin(t *testing.T) {
	_, _, svc := newAuthFixture("admin")
	assert.True(t, svc.IsAdmin(&model.User{Username: "admin"}))
	assert.False(t, svc.IsAdmin(&model.User{Username: "alice"}))
	assert.False(t, svc.IsAdmin(nil))

	_, _, unset := newAuthFixture("")
	assert.False(t, unset.IsAdmin(&model.User{Username: ""}))
}
