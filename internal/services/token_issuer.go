package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/devharu/snaptag/backend/internal/models"
	"github.com/devharu/snaptag/backend/internal/tokenstore"
)

// TokenIssuer mints and validates the access/refresh token pairs. Access
// tokens are stateless; refresh tokens are tracked in the TokenStore with
// one outstanding token per user (issuing overwrites the previous one).
type TokenIssuer struct {
	store         tokenstore.TokenStore
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenIssuer creates a new TokenIssuer
func NewTokenIssuer(store tokenstore.TokenStore, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		store:         store,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Issue mints a signed access/refresh pair for the user and persists the
// refresh token under the user's id with the refresh lifetime as TTL. Any
// signing or store failure collapses into ErrTokenNotGenerated so callers
// can abort the surrounding operation with a single stable code.
func (i *TokenIssuer) Issue(ctx context.Context, userID uint) (models.TokenPair, error) {
	subject := strconv.FormatUint(uint64(userID), 10)

	accessToken, err := i.sign(subject, i.accessSecret, i.accessTTL)
	if err != nil {
		log.Printf("Failed to sign access token: %v\n", err)
		return models.TokenPair{}, models.ErrTokenNotGenerated
	}

	refreshToken, err := i.sign(subject, i.refreshSecret, i.refreshTTL)
	if err != nil {
		log.Printf("Failed to sign refresh token: %v\n", err)
		return models.TokenPair{}, models.ErrTokenNotGenerated
	}

	// Overwrites any previously stored refresh token: last write wins,
	// one active refresh token per user.
	if err := i.store.Set(ctx, subject, refreshToken, i.refreshTTL); err != nil {
		log.Printf("Failed to store refresh token: %v\n", err)
		return models.TokenPair{}, models.ErrTokenNotGenerated
	}

	return models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Rotate exchanges a presented refresh token for a fresh pair. The presented
// token must be byte-equal to the stored one; a stale token rotated away by
// a newer issuance fails with ErrTokenMismatch even if its signature is
// still valid. The stored token is replaced on success.
func (i *TokenIssuer) Rotate(ctx context.Context, userID uint, presented string) (models.TokenPair, error) {
	subject := strconv.FormatUint(uint64(userID), 10)

	stored, err := i.store.Get(ctx, subject)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotFound) {
			return models.TokenPair{}, models.ErrTokenMismatch
		}
		return models.TokenPair{}, err
	}
	if stored != presented {
		return models.TokenPair{}, models.ErrTokenMismatch
	}

	if _, err := i.parse(presented, i.refreshSecret); err != nil {
		return models.TokenPair{}, models.ErrTokenExpired
	}

	return i.Issue(ctx, userID)
}

// VerifyAccess checks an access token's signature and expiry only. It never
// consults the TokenStore: access tokens are unrevokable within their
// short lifetime.
func (i *TokenIssuer) VerifyAccess(token string) bool {
	_, err := i.parse(token, i.accessSecret)
	return err == nil
}

// ParseAccess validates an access token and returns its claims.
func (i *TokenIssuer) ParseAccess(token string) (*models.TokenClaims, error) {
	return i.parse(token, i.accessSecret)
}

func (i *TokenIssuer) sign(subject string, secret []byte, ttl time.Duration) (string, error) {
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (i *TokenIssuer) parse(tokenString string, secret []byte) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
