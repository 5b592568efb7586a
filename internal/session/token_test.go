package session

import (
	"testing"
	"time"

	"fleet-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	identity := models.Session{Email: "a@b.com", Name: "A"}

	signed, err := tokens.Issue(identity)
	require.NoError(t, err)

	parsed, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestTokensRejectForeignSecret(t *testing.T) {
	signed, err := NewTokens("one", time.Hour).Issue(models.Session{Email: "a@b.com", Name: "A"})
	require.NoError(t, err)

	_, err = NewTokens("two", time.Hour).Parse(signed)
	assert.Error(t, err)
}

func TestTokensRejectExpired(t *testing.T) {
	tokens := NewTokens("secret", time.Minute)
	issued := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issued }

	signed, err := tokens.Issue(models.Session{Email: "a@b.com", Name: "A"})
	require.NoError(t, err)

	tokens.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = tokens.Parse(signed)
	assert.Error(t, err)
}
