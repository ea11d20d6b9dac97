package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/harmonia/academy-backend/internal/response"
	"github.com/harmonia/academy-backend/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for decoded token claims.
	ContextKeyClaims = "claims"
)

// RequireAuth validates a bearer token from the Authorization header and
// exposes the decoded claims to downstream handlers. It performs
// authentication only, no role checks.
func RequireAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractAndVerifyClaims(c, tokens)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthorized)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the decoded token claims from the Gin context.
func GetClaims(c *gin.Context) jwt.MapClaims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

func extractAndVerifyClaims(c *gin.Context, tokens *service.TokenService) (jwt.MapClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("authorization header required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errors.New("authorization header must be a bearer token")
	}

	return tokens.Verify(parts[1])
}
