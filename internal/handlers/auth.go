package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devharu/snaptag/backend/internal/models"
	"github.com/devharu/snaptag/backend/internal/services"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	identityService *services.IdentityService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(identityService *services.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/refresh", h.Refresh)
}

// Register handles user registration by phone number
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := h.identityService.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, tokens)
}

// Login issues a token pair for a registered phone number
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := h.identityService.Login(c.Request().Context(), req.Phone)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Refresh rotates a refresh token into a fresh access/refresh pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := h.identityService.Refresh(c.Request().Context(), req.UserID, req.RefreshToken)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tokens)
}
