package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devharu/snaptag/backend/internal/middleware"
	"github.com/devharu/snaptag/backend/internal/models"
	"github.com/devharu/snaptag/backend/internal/services"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.PATCH("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/heart", h.HeartPost)
}

// CreatePost creates a new post from a multipart form: the image under
// "file", the caption under "content" and the tagged user ids as repeated
// "receiverUserId" values.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	file, err := readFormFile(c, "file")
	if err != nil {
		return httpError(models.ErrContentMissing)
	}

	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	tagUserIDs := make([]uint, 0, len(params["receiverUserId"]))
	for _, raw := range params["receiverUserId"] {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return httpError(models.ErrBadRequest)
		}
		tagUserIDs = append(tagUserIDs, uint(id))
	}

	req := models.CreatePostRequest{
		ReceiverUserID: tagUserIDs,
		Content:        c.FormValue("content"),
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	postID, postURL, err := h.postService.CreatePost(c.Request().Context(), userID, req.Content, req.ReceiverUserID, file)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"postId":  postID,
		"postUrl": postURL,
	})
}

// UpdatePost applies a partial update to an owned post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	postID, err := parseIDParam(c)
	if err != nil {
		return httpError(models.ErrBadRequest)
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := h.postService.UpdatePost(c.Request().Context(), postID, userID, req); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "SUCCESS"})
}

// DeletePost deletes a post by id
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	postID, err := parseIDParam(c)
	if err != nil {
		return httpError(models.ErrBadRequest)
	}

	if err := h.postService.DeletePost(c.Request().Context(), postID, userID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "SUCCESS"})
}

// HeartPost toggles the caller's heart on a post. The response does not
// reveal which state resulted.
func (h *PostHandler) HeartPost(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	postID, err := parseIDParam(c)
	if err != nil {
		return httpError(models.ErrBadRequest)
	}

	if err := h.postService.HeartPost(c.Request().Context(), postID, userID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "SUCCESS"})
}

func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
