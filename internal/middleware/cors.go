package middleware

import (
	"net/http"
	"strings"

	"memberdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CORS enforces an exact-origin allow-list. Allowed origins get their origin
// reflected with credentials enabled; any other cross-origin request is
// rejected before it reaches a handler. Requests without an Origin header
// (curl, same-origin) pass through untouched.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" {
			if !allowed[origin] {
				response.Error(c, http.StatusForbidden, "ORIGIN_FORBIDDEN", "Origin not allowed")
				c.Abort()
				return
			}

			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Authorization, Accept, Origin, X-Requested-With")
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Max-Age", "600")
		}

		// Preflight must finish before JWT/role middleware.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
