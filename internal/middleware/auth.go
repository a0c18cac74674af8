package middleware

import (
	"errors"
	"net/http"
	"strings"

	"memberdesk/internal/pkg/jwt"
	"memberdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth verifies the bearer credential and exposes the verified claims to
// downstream handlers.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) {
				response.Error(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired, please login again")
			} else {
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}
