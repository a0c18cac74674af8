package response

import "github.com/gin-gonic/gin"

// Error writes the JSON error envelope used across all handlers. Messages are
// short and never carry internal detail.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
