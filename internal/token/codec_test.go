package token

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixCodec_RoundTrip(t *testing.T) {
	var codec PrefixCodec

	tok, err := codec.Issue("u-42")
	require.NoError(t, err)
	assert.Equal(t, "hc-token-u-42", tok)

	userID, err := codec.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-42", userID)
}

func TestPrefixCodec_Deterministic(t *testing.T) {
	var codec PrefixCodec

	a, _ := codec.Issue("u1")
	b, _ := codec.Issue("u1")
	assert.Equal(t, a, b)
}

func TestPrefixCodec_ParseRejects(t *testing.T) {
	var codec PrefixCodec

	for _, tok := range []string{"", "u1", "Bearer hc-token-u1", Prefix} {
		_, err := codec.Parse(tok)
		assert.ErrorIs(t, err, ErrMalformedToken, "token %q", tok)
	}
}

func TestPrefixCodec_IssueEmptyID(t *testing.T) {
	_, err := PrefixCodec{}.Issue("")
	assert.Error(t, err)
}

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := NewJWTCodec("test-secret-key", 15*time.Minute)

	tok, err := codec.Issue("u1")
	require.NoError(t, err)
	assert.NotContains(t, tok, Prefix)

	userID, err := codec.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	tok, err := NewJWTCodec("secret-a", time.Hour).Issue("u1")
	require.NoError(t, err)

	_, err = NewJWTCodec("secret-b", time.Hour).Parse(tok)
	assert.True(t, errors.Is(err, ErrMalformedToken))
}

func TestJWTCodec_Expired(t *testing.T) {
	codec := NewJWTCodec("test-secret-key", time.Minute)
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issuedAt }

	tok, err := codec.Issue("u1")
	require.NoError(t, err)

	codec.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = codec.Parse(tok)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestJWTCodec_NoExpiry(t *testing.T) {
	codec := NewJWTCodec("test-secret-key", 0)
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issuedAt }

	tok, err := codec.Issue("u1")
	require.NoError(t, err)

	codec.now = func() time.Time { return issuedAt.Add(24 * 365 * time.Hour) }
	userID, err := codec.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestJWTCodec_Garbage(t *testing.T) {
	_, err := NewJWTCodec("k", time.Hour).Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrMalformedToken)

	_, err = NewJWTCodec("k", time.Hour).Parse("")
	assert.ErrorIs(t, err, ErrMalformedToken)
}
