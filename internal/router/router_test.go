package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devharu/snaptag/backend/internal/tokenstore"
	"github.com/devharu/snaptag/backend/pkg/config"
	"github.com/devharu/snaptag/backend/validators"
)

type stubUploader struct {
	url string
}

func (u *stubUploader) Upload(_ context.Context, _ []byte, _, _ string) (string, error) {
	return u.url, nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:        "test-jwt-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	uploader := &stubUploader{url: "https://storage.googleapis.com/test-bucket/obj.jpg"}
	SetupRoutes(e, db, tokenstore.NewMemoryStore(), uploader, cfg)
	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, e *echo.Echo, phone string) (accessToken, refreshToken string) {
	t.Helper()

	body := fmt.Sprintf(`{"username":"haru","usertitle":"photographer","phoneNumber":"%s"}`, phone)
	rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tokens map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	require.NotEmpty(t, tokens["accessToken"])
	require.NotEmpty(t, tokens["refreshToken"])
	return tokens["accessToken"], tokens["refreshToken"]
}

func TestRegisterLoginFlow(t *testing.T) {
	e := newTestServer(t)

	registerUser(t, e, "+821012345678")

	// Same phone again conflicts.
	body := `{"username":"haru","usertitle":"photographer","phoneNumber":"+821012345678"}`
	rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALREADY_REGISTERED")

	// Login with the registered phone works.
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", `{"phone":"+821012345678"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Unknown phone fails.
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", `{"phone":"+821087654321"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestRefreshRotationOverHTTP(t *testing.T) {
	e := newTestServer(t)

	_, refresh := registerUser(t, e, "+821012345678")

	body := fmt.Sprintf(`{"userId":1,"refreshToken":"%s"}`, refresh)
	rec := doJSON(e, http.MethodPost, "/api/v1/auth/refresh", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Replaying the rotated-away token fails.
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/refresh", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISMATCH")
}

func TestProtectedRoutesRequireBearerToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/posts/feed", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/posts/feed", "", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	access, _ := registerUser(t, e, "+821012345678")
	rec = doJSON(e, http.MethodGet, "/api/v1/posts/feed", "", access)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreatePostAndHeartOverHTTP(t *testing.T) {
	e := newTestServer(t)

	access, _ := registerUser(t, e, "+821012345678")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "shot.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("content", "hello"))
	require.NoError(t, writer.WriteField("receiverUserId", "1"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+access)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		PostID  uint   `json:"postId"`
		PostURL string `json:"postUrl"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.PostID)
	assert.Equal(t, "https://storage.googleapis.com/test-bucket/obj.jpg", created.PostURL)

	// Heart toggle succeeds without revealing the resulting state.
	heartPath := fmt.Sprintf("/api/v1/posts/%d/heart", created.PostID)
	rec = doJSON(e, http.MethodPost, heartPath, "", access)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(e, http.MethodPost, heartPath, "", access)
	assert.Equal(t, http.StatusOK, rec.Code)
}
