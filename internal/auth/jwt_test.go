package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(secret, "b0c6e4f2-session", time.Hour)
	require.NoError(t, err)

	id, err := ValidateSessionToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "b0c6e4f2-session", id)
}

func TestSessionTokenRejections(t *testing.T) {
	token, err := GenerateSessionToken(secret, "abc", time.Hour)
	require.NoError(t, err)

	_, err = ValidateSessionToken([]byte("other-secret"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateSessionToken(secret, "abc", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateSessionToken(secret, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ValidateSessionToken(secret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
