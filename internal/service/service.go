package service

import "errors"

// Sentinel errors shared across services. Handlers translate these into
// HTTP responses; everything else surfaces as a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrReaderNil          = errors.New("reader is nil")
)
