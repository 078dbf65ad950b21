package tokenstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no value is stored under the key,
// either because it was never set or because its TTL elapsed.
var ErrNotFound = errors.New("token not found")

// TokenStore holds the single outstanding refresh token per user. The key is
// the user id as a decimal string; setting a key overwrites any prior value,
// which is what enforces the one-active-refresh-token-per-user policy.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
