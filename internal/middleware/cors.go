package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewCORS returns the cross-origin middleware. With no configured
// origins every origin is allowed; with exactly one, that origin is
// always sent; with several, the request's Origin header must match
// one of them, otherwise the first configured origin is sent back.
// Preflight OPTIONS requests are answered with 204 and never reach
// the handlers.
func NewCORS(origins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqOrigin := c.GetHeader("Origin")

		c.Header("Access-Control-Allow-Origin", resolveOrigin(c, origins, reqOrigin))
		c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS,PATCH")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "3600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func resolveOrigin(c *gin.Context, origins []string, reqOrigin string) string {
	switch len(origins) {
	case 0:
		return "*"
	case 1:
		if o := strings.TrimSpace(origins[0]); o != "" {
			return o
		}
		return "*"
	}

	for _, o := range origins {
		if strings.EqualFold(strings.TrimSpace(o), reqOrigin) {
			return reqOrigin
		}
	}

	if reqOrigin != "" {
		GetLogger(c).Debug("origin not in cors allow-list",
			zap.String("origin", reqOrigin),
			zap.Strings("allowed_origins", origins),
			zap.String("path", c.Request.URL.Path),
		)
	}
	return origins[0]
}

// CORS builds NewCORS from a comma-separated origin list, the form the
// host's configuration carries it in.
func CORS(allowed string) gin.HandlerFunc {
	allowed = strings.TrimSpace(allowed)
	if allowed == "" {
		return NewCORS(nil)
	}
	origins := strings.Split(allowed, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return NewCORS(origins)
}
