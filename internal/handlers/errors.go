package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devharu/snaptag/backend/internal/models"
)

var errorStatus = map[error]int{
	models.ErrAlreadyRegistered:   http.StatusConflict,
	models.ErrUserNotFound:        http.StatusNotFound,
	models.ErrTokenNotGenerated:   http.StatusBadRequest,
	models.ErrTokenMismatch:       http.StatusBadRequest,
	models.ErrTokenExpired:        http.StatusUnauthorized,
	models.ErrContentMissing:      http.StatusBadRequest,
	models.ErrLoginRequired:       http.StatusBadRequest,
	models.ErrPostNotFound:        http.StatusNotFound,
	models.ErrForbidden:           http.StatusForbidden,
	models.ErrBadRequest:          http.StatusBadRequest,
	models.ErrExtensionNotAllowed: http.StatusBadRequest,
}

// httpError maps a service error onto an echo HTTP error carrying the
// stable error code as its message.
func httpError(err error) *echo.HTTPError {
	for sentinel, status := range errorStatus {
		if errors.Is(err, sentinel) {
			return echo.NewHTTPError(status, sentinel.Error())
		}
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
