package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogapi/internal/model"
)

// Tokens issues and verifies the two JWT families used by the API:
// short-lived content access tokens scoped to a single entity, and
// session tokens carrying a user id. Both are HS256 over a shared secret.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime applied to every token this instance issues.
func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

// IssueContent mints an access token that unlocks exactly one entity of one
// kind. The scoping claim is named after the kind ("post_id", "project_id",
// "life_id") so a token for one kind can never verify against another.
func (t *Tokens) IssueContent(kind model.Kind, id int64) (string, error) {
	claims := jwt.MapClaims{
		kind.ClaimKey(): id,
		"exp":           time.Now().Add(t.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// VerifyContent reports whether the token is a valid, unexpired content
// token for the given entity. Any parse failure, signature mismatch, wrong
// algorithm, expiry, missing claim, or id mismatch reports false.
func (t *Tokens) VerifyContent(token string, kind model.Kind, id int64) bool {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return false
	}
	got, ok := claims[kind.ClaimKey()].(float64)
	if !ok {
		return false
	}
	return int64(got) == id
}

// IssueSession mints a login token for the given user id.
func (t *Tokens) IssueSession(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(t.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// VerifySession validates a session token and returns the user id it carries.
func (t *Tokens) VerifySession(token string) (int64, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("parse session token: %w", err)
	}
	if !parsed.Valid {
		return 0, fmt.Errorf("invalid session token")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, fmt.Errorf("session token missing subject")
	}
	var id int64
	if _, err := fmt.Sscanf(sub, "%d", &id); err != nil {
		return 0, fmt.Errorf("malformed subject %q", sub)
	}
	return id, nil
}

func (t *Tokens) keyFunc(_ *jwt.Token) (any, error) {
	return t.secret, nil
}
