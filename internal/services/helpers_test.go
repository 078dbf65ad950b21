package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devharu/snaptag/backend/internal/models"
	"github.com/devharu/snaptag/backend/internal/tokenstore"
)

// newTestDB opens an in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostTag{},
		&models.Heart{},
		&models.React{},
	))
	return db
}

// newTestIssuer builds a TokenIssuer over an in-memory token store.
func newTestIssuer(store tokenstore.TokenStore) *TokenIssuer {
	return NewTokenIssuer(store, "test-jwt-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)
}

// stubUploader is a MediaUploader that records calls and can be forced to fail.
type stubUploader struct {
	url   string
	err   error
	calls int
}

func (u *stubUploader) Upload(_ context.Context, _ []byte, _, _ string) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

// failingStore is a TokenStore whose writes always fail, used to drive the
// token-not-generated path.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", tokenstore.ErrNotFound
}

func (failingStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("store unavailable")
}
