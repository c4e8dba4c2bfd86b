package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the API token; "Authorization: Bearer <token>" is accepted too.
const APIKeyHeader = "x-api-key"

// APITokenAuth is a middleware that admits only requests presenting the configured API token.
func APITokenAuth(apiToken string) gin.HandlerFunc {
	expected := []byte(apiToken)
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		presented := requestToken(c)
		if presented == "" {
			logger.Warn("API token missing", "method", c.Request.Method, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API token required"})
			return
		}

		// An empty configured token never matches
		if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(presented), expected) != 1 {
			logger.Warn("API token rejected", "method", c.Request.Method, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API token"})
			return
		}

		c.Set("authMethod", "api_token")
		c.Next()
	}
}

func requestToken(c *gin.Context) string {
	if token := c.GetHeader(APIKeyHeader); token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
