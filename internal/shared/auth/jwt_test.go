package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	other := NewTokenIssuer([]byte("other-secret"), time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	_, err := issuer.Verify("not-a-token")
	assert.Error(t, err)
}
