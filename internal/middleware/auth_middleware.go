package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityKey is the gin context key holding the caller's subject claim.
const IdentityKey = "identity"

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid or expired token")

// AuthMiddleware handles JWT validation. Tokens are issued by the external
// identity provider; this service only verifies them.
type AuthMiddleware struct {
	secret []byte
	issuer string
	logger *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance. An empty issuer
// accepts tokens from any issuer.
func NewAuthMiddleware(secret, issuer string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(secret),
		issuer: issuer,
		logger: logger,
	}
}

// ValidateToken verifies an HMAC-signed token and returns its subject.
func (m *AuthMiddleware) ValidateToken(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}

	return subject, nil
}

// RequireAuth validates the bearer token and sets the identity in context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.logger.Warn("⚠️ [Middleware] Missing Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required", "code": "UNAUTHORIZED"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.logger.Warn("⚠️ [Middleware] Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format", "code": "UNAUTHORIZED"})
			return
		}

		identity, err := m.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("⚠️ [Middleware] Invalid token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "code": "UNAUTHORIZED"})
			return
		}

		c.Set(IdentityKey, identity)
		m.logger.Debug("✅ [Middleware] Token validated", "identity", identity)

		c.Next()
	}
}
