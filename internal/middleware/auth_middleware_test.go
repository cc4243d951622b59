package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartgym/backend-go/internal/middleware"
	"github.com/smartgym/backend-go/internal/testutil"
)

const testSecret = "test_secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "cognito-123",
		Issuer:    "https://idp.example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func TestAuthMiddleware_ValidateToken(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	noSubject := validClaims()
	noSubject.Subject = ""

	otherIssuer := validClaims()
	otherIssuer.Issuer = "https://evil.example.com"

	tests := []struct {
		name    string
		issuer  string
		token   func(t *testing.T) string
		wantErr bool
	}{
		{"valid", "", func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, validClaims()) }, false},
		{"valid with issuer", "https://idp.example.com", func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, validClaims()) }, false},
		{"wrong issuer", "https://idp.example.com", func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, otherIssuer) }, true},
		{"wrong secret", "", func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, "other", validClaims()) }, true},
		{"expired", "", func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, expired) }, true},
		{"missing expiry", "", func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, noExpiry) }, true},
		{"missing subject", "", func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, noSubject) }, true},
		{"garbage", "", func(t *testing.T) string { return "not.a.token" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := middleware.NewAuthMiddleware(testSecret, tt.issuer, testutil.DiscardLogger())

			identity, err := m.ValidateToken(tt.token(t))

			if tt.wantErr {
				assert.ErrorIs(t, err, middleware.ErrInvalidToken)
				assert.Empty(t, identity)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "cognito-123", identity)
			}
		})
	}
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	m := middleware.NewAuthMiddleware(testSecret, "", testutil.DiscardLogger())

	r := gin.New()
	r.Use(m.RequireAuth())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.IdentityKey))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Invalid authorization header format"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "Invalid or expired token"},
		{"valid token", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, validClaims()), http.StatusOK, "cognito-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
