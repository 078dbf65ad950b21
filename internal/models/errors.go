package models

import "errors"

// Stable service-level errors. Handlers map these to HTTP responses with
// the matching code strings.
var (
	ErrAlreadyRegistered   = errors.New("ALREADY_REGISTERED")
	ErrUserNotFound        = errors.New("USER_NOT_FOUND")
	ErrTokenNotGenerated   = errors.New("TOKEN_NOT_GENERATED")
	ErrTokenMismatch       = errors.New("TOKEN_MISMATCH")
	ErrTokenExpired        = errors.New("TOKEN_EXPIRED")
	ErrContentMissing      = errors.New("CONTENT_MISSING")
	ErrLoginRequired       = errors.New("LOGIN_REQUIRED")
	ErrPostNotFound        = errors.New("NOT_FOUND")
	ErrForbidden           = errors.New("FORBIDDEN")
	ErrBadRequest          = errors.New("BAD_REQUEST")
	ErrExtensionNotAllowed = errors.New("EXTENSION_NOT_ALLOWED")
)
