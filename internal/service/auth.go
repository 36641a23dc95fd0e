package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"blogapi/internal/auth"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// LoginResult carries the session token handed to a client after login.
type LoginResult struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

// Profile is a user together with their resolved role.
type Profile struct {
	User    *model.User `json:"user"`
	IsAdmin bool        `json:"is_admin"`
}

// AuthService handles account registration, login and identity resolution.
type AuthService interface {
	// Login verifies credentials and issues a session token. Unknown
	// usernames and wrong passwords both return ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Register creates a new account. Username and email collisions map to
	// ErrUsernameTaken / ErrEmailTaken.
	Register(ctx context.Context, username, email, password string) (*model.User, error)

	// Identify resolves a session token to the account it belongs to.
	Identify(ctx context.Context, token string) (*Profile, error)

	// IsAdmin reports whether the user is the configured admin identity.
	IsAdmin(u *model.User) bool
}

type authService struct {
	users         repository.UserRepository
	tokens        *auth.Tokens
	adminUsername string
}

var _ AuthService = (*authService)(nil)

func NewAuthService(users repository.UserRepository, tokens *auth.Tokens, adminUsername string) AuthService {
	return &authService{users: users, tokens: tokens, adminUsername: adminUsername}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueSession(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	// Best effort; a failed timestamp update must not fail the login.
	_ = s.users.UpdateLastLogin(ctx, u.ID, time.Now().UTC())

	return &LoginResult{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
	}, nil
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		// A concurrent insert can still slip past the prechecks.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "users_email_key" {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *authService) Identify(ctx context.Context, token string) (*Profile, error) {
	id, err := s.tokens.VerifySession(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &Profile{User: u, IsAdmin: s.IsAdmin(u)}, nil
}

func (s *authService) IsAdmin(u *model.User) bool {
	return u != nil && s.adminUsername != "" && u.Username == s.adminUsername
}
