package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devharu/snaptag/backend/internal/services"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postService *services.PostService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postService *services.PostService) *FeedHandler {
	return &FeedHandler{postService: postService}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts/feed", h.GetFeed)
}

// GetFeed returns a random sample of public posts with reaction tallies and
// heart counts.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	posts, err := h.postService.GetFeed(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}
