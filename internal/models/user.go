package models

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an identity record keyed by phone number.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Phone       string    `json:"phone" gorm:"uniqueIndex;not null"` // Immutable after registration
	UserName    string    `json:"userName"`
	UserTitle   string    `json:"userTitle"`
	UserPicPath *string   `json:"userPicPath,omitempty"` // Profile picture URL, set by a dedicated update path
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	ProfilePath *string `json:"profilePath,omitempty" validate:"omitempty,min=1"`
	Username    string  `json:"username" validate:"required"`
	Usertitle   string  `json:"usertitle" validate:"required"`
	PhoneNumber string  `json:"phoneNumber" validate:"required,e164"`
}

// LoginRequest defines the request body for login
type LoginRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
}

// RefreshRequest defines the request body for the token refresh exchange
type RefreshRequest struct {
	UserID       uint   `json:"userId" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenPair is an access/refresh token pair issued as one unit.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenClaims are the claims carried by both access and refresh tokens.
// Subject holds the user id as a decimal string.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// UserID parses the token subject back into a user id.
func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
