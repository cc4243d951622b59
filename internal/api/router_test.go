package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartgym/backend-go/internal/api"
	"github.com/smartgym/backend-go/internal/database"
	"github.com/smartgym/backend-go/internal/database/models"
	"github.com/smartgym/backend-go/internal/database/repository"
	"github.com/smartgym/backend-go/internal/database/service"
	"github.com/smartgym/backend-go/internal/handler"
	"github.com/smartgym/backend-go/internal/middleware"
	"github.com/smartgym/backend-go/internal/testutil"
)

const testSecret = "router_secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	owner  *models.User
	token  string
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewTestDB(t)
	owner := testutil.SeedUser(t, db, 7)
	logger := testutil.DiscardLogger()

	gymRepo := repository.NewGymRepository(db)
	userRepo := repository.NewUserRepository(db)

	router := api.SetupRouter(
		api.NewHealthHandler(func(ctx context.Context) error { return database.Ping(ctx, db) }),
		handler.NewGymHandler(service.NewGymService(gymRepo, userRepo, logger), logger),
		handler.NewUserHandler(service.NewUserService(userRepo, logger), logger),
		middleware.NewAuthMiddleware(testSecret, "", logger),
		middleware.NewNoOpRateLimiter(logger),
	)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   owner.CognitoUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return &testServer{router: router, owner: owner, token: token}
}

func (s *testServer) do(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodGet, "/api/v1/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = s.do(http.MethodGet, "/metrics", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gyms_api_http_requests_total")
}

func TestRouter_RequiresToken(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodGet, "/api/v1/gyms", nil, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_GymLifecycle(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodPost, "/api/v1/gyms", map[string]string{
		"name":    "SmartGym",
		"address": "Ruta 8 esq cochabamba",
		"email":   "EXAMPLE@gmail.com",
		"userId":  s.owner.ID.String(),
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.GymResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "example@gmail.com", created.Email)
	assert.Equal(t, "", created.Phone)
	assert.Equal(t, "", created.Website)
	assert.True(t, created.IsActive)

	gymPath := "/api/v1/gyms/" + created.ID.String()

	w = s.do(http.MethodPost, "/api/v1/gyms", map[string]string{
		"name":    "SmartGym",
		"address": "Other street",
		"email":   "other@gmail.com",
		"userId":  s.owner.ID.String(),
	}, true)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPatch, gymPath, map[string]string{"website": "https://SmartGym.com"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"website":"https://smartgym.com"`)

	w = s.do(http.MethodDelete, gymPath, nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isActive":false`)

	w = s.do(http.MethodGet, gymPath, nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isActive":false`)

	w = s.do(http.MethodGet, "/api/v1/users/"+s.owner.ID.String()+"/gyms", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var owned []models.GymResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &owned))
	assert.Len(t, owned, 1)
}

func TestRouter_UserRoutes(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodPost, "/api/v1/users", map[string]string{
		"cognitoUserId": "cognito-new",
		"firstName":     "Lucia",
		"lastName":      "Fernandez",
		"document":      "45678901",
		"email":         "lucia@example.com",
		"phone":         "099123456",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/users", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var users []models.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestHealthHandler_Unavailable(t *testing.T) {
	r := gin.New()
	r.GET("/health", api.NewHealthHandler(func(ctx context.Context) error {
		return errors.New("database is down")
	}).Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}
