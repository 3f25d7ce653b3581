package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedService(secret string, ttl time.Duration, at time.Time) *HMACService {
	s := NewHMACService(secret, ttl)
	s.now = func() time.Time { return at }
	return s
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newFixedService("test-secret", time.Hour, now)

	tok, err := s.Issue(42, "alice", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newFixedService("test-secret", time.Hour, issuedAt)

	tok, err := s.Issue(42, "alice", "a@x.com")
	require.NoError(t, err)

	s.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyMalformed(t *testing.T) {
	s := NewHMACService("test-secret", time.Hour)

	_, err := s.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestVerifyWrongSecret(t *testing.T) {
	s := NewHMACService("test-secret", time.Hour)

	tok, err := s.Issue(42, "alice", "a@x.com")
	require.NoError(t, err)

	other := NewHMACService("other-secret", time.Hour)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestIssueRequiresSecretAndExpiry(t *testing.T) {
	_, err := NewHMACService("", time.Hour).Issue(1, "u", "e")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewHMACService("secret", 0).Issue(1, "u", "e")
	assert.ErrorIs(t, err, ErrInvalid)
}
