package handlers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devharu/snaptag/backend/internal/middleware"
	"github.com/devharu/snaptag/backend/internal/services"
)

// UserHandler handles profile-related HTTP requests
type UserHandler struct {
	identityService *services.IdentityService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(identityService *services.IdentityService) *UserHandler {
	return &UserHandler{identityService: identityService}
}

// RegisterUserRoutes registers profile-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetMe)
	g.POST("/users/me/picture", h.SetProfilePicture)
}

// GetMe returns the authenticated user's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	user, err := h.identityService.GetUserInfo(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// SetProfilePicture uploads a new profile picture for the authenticated user
func (h *UserHandler) SetProfilePicture(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	file, err := readFormFile(c, "file")
	if err != nil {
		return err
	}

	url, err := h.identityService.SetProfilePicture(c.Request().Context(), userID, file)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"profileUrl": url})
}

// readFormFile reads the named multipart file part into a FileUpload.
func readFormFile(c echo.Context, name string) (services.FileUpload, error) {
	fileHeader, err := c.FormFile(name)
	if err != nil {
		return services.FileUpload{}, echo.NewHTTPError(http.StatusBadRequest, "Missing file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return services.FileUpload{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return services.FileUpload{}, err
	}

	return services.FileUpload{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}
