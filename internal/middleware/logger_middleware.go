package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggerKey is the gin context key the request-scoped zap logger is
// stored under.
const LoggerKey = "logger"

// LoggerMiddleware stores logger in each request's context so the rest
// of the middleware chain and the handlers can pull it with GetLogger.
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LoggerKey, logger)
		c.Next()
	}
}

// GetLogger returns the request's logger, or a no-op logger when the
// middleware isn't mounted (handler unit tests, mostly).
func GetLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.NewNop()
}
