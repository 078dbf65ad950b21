package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devharu/snaptag/backend/internal/models"
	"github.com/devharu/snaptag/backend/internal/tokenstore"
)

func TestTokenIssuer_Issue_ProducesVerifiablePair(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	pair, err := issuer.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	assert.True(t, issuer.VerifyAccess(pair.AccessToken))

	claims, err := issuer.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	// The refresh token lands in the store under the user's id.
	stored, err := store.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshToken, stored)
}

func TestTokenIssuer_VerifyAccess_RejectsGarbageAndWrongSecret(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	issuer := newTestIssuer(store)
	other := NewTokenIssuer(store, "another-secret", "another-refresh", 15*time.Minute, 24*time.Hour)
	ctx := context.Background()

	pair, err := other.Issue(ctx, 7)
	require.NoError(t, err)

	assert.False(t, issuer.VerifyAccess("not-a-token"))
	assert.False(t, issuer.VerifyAccess(pair.AccessToken))

	// A refresh token is not a valid access token: different secret.
	assert.False(t, issuer.VerifyAccess(pair.RefreshToken))
}

func TestTokenIssuer_Rotate_ReplacesStoredToken(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	first, err := issuer.Issue(ctx, 9)
	require.NoError(t, err)

	second, err := issuer.Rotate(ctx, 9, first.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The original refresh token was rotated away: replaying it must fail
	// even though its signature is still valid.
	_, err = issuer.Rotate(ctx, 9, first.RefreshToken)
	assert.ErrorIs(t, err, models.ErrTokenMismatch)

	// The fresh one keeps working.
	_, err = issuer.Rotate(ctx, 9, second.RefreshToken)
	assert.NoError(t, err)
}

func TestTokenIssuer_Rotate_UnknownUser(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(tokenstore.NewMemoryStore())

	_, err := issuer.Rotate(context.Background(), 123, "whatever")
	assert.ErrorIs(t, err, models.ErrTokenMismatch)
}

func TestTokenIssuer_Rotate_ExpiredRefreshToken(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	// Refresh tokens are minted already expired; the store entry itself
	// never expires so the mismatch check passes first.
	issuer := NewTokenIssuer(store, "test-jwt-secret", "test-refresh-secret", 15*time.Minute, -time.Minute)
	ctx := context.Background()

	pair, err := issuer.Issue(ctx, 5)
	require.NoError(t, err)

	_, err = issuer.Rotate(ctx, 5, pair.RefreshToken)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}

func TestTokenIssuer_Issue_StoreFailure(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(failingStore{})

	_, err := issuer.Issue(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrTokenNotGenerated)
}

func TestTokenIssuer_Issue_OverwritesPriorRefreshToken(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemoryStore()
	issuer := newTestIssuer(store)
	ctx := context.Background()

	first, err := issuer.Issue(ctx, 3)
	require.NoError(t, err)
	second, err := issuer.Issue(ctx, 3)
	require.NoError(t, err)

	stored, err := store.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, second.RefreshToken, stored)

	// Concurrent logins are last-write-wins: the first session's refresh
	// token is no longer rotatable.
	_, err = issuer.Rotate(ctx, 3, first.RefreshToken)
	assert.ErrorIs(t, err, models.ErrTokenMismatch)
}
