package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware emits the CORS headers for the API surface and
// answers preflight requests. The policy is permissive; credentials
// ride on the SameSite=Lax session cookie, not on CORS.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
