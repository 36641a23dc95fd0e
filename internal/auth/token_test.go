package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/model"
)

func TestTokens_ContentRoundTrip(t *testing.T) {
	tok := NewTokens("test-secret", time.Hour)

	s, err := tok.IssueContent(model.KindPost, 42)
	require.NoError(t, err)
	require.NotEmpty(t, s)

	assert.True(t, tok.VerifyContent(s, model.KindPost, 42))
}

func TestTokens_ContentScoping(t *testing.T) {
	tok := NewTokens("test-secret", time.Hour)

	s, err := tok.IssueContent(model.KindPost, 42)
	require.NoError(t, err)

	tests := []struct {
		name string
		kind model.Kind
		id   int64
	}{
		{"different entity same kind", model.KindPost, 43},
		{"same id different kind", model.KindProject, 42},
		{"life kind", model.KindLife, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tok.VerifyContent(s, tt.kind, tt.id))
		})
	}
}

func TestTokens_ContentGarbage(t *testing.T) {
	tok := NewTokens("test-secret", time.Hour)

	assert.False(t, tok.VerifyContent("", model.KindPost, 1))
	assert.False(t, tok.VerifyContent("not.a.jwt", model.KindPost, 1))
	assert.False(t, tok.VerifyContent("garbage", model.KindPost, 1))
}

func TestTokens_ContentWrongSecret(t *testing.T) {
	issuer := NewTokens("secret-a", time.Hour)
	verifier := NewTokens("secret-b", time.Hour)

	s, err := issuer.IssueContent(model.KindPost, 7)
	require.NoError(t, err)

	assert.False(t, verifier.VerifyContent(s, model.KindPost, 7))
}

func TestTokens_ContentExpired(t *testing.T) {
	tok := NewTokens("test-secret", -time.Minute)

	s, err := tok.IssueContent(model.KindPost, 7)
	require.NoError(t, err)

	assert.False(t, tok.VerifyContent(s, model.KindPost, 7))
}

func TestTokens_RejectsNoneAlgorithm(t *testing.T) {
	tok := NewTokens("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"post_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.False(t, tok.VerifyContent(s, model.KindPost, 7))
}

func TestTokens_SessionRoundTrip(t *testing.T) {
	tok := NewTokens("test-secret", time.Hour)

	s, err := tok.IssueSession(15)
	require.NoError(t, err)

	id, err := tok.VerifySession(s)
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)
}

func TestTokens_SessionNotContentToken(t *testing.T) {
	tok := NewTokens("test-secret", time.Hour)

	// A content token has no subject and must not pass as a session.
	s, err := tok.IssueContent(model.KindPost, 15)
	require.NoError(t, err)

	_, err = tok.VerifySession(s)
	assert.Error(t, err)
}

func TestTokens_SessionExpired(t *testing.T) {
	tok := NewTokens("test-secret", -time.Minute)

	s, err := tok.IssueSession(15)
	require.NoError(t, err)

	_, err = tok.VerifySession(s)
	assert.Error(t, err)
}
