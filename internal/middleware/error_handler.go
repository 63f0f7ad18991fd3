package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tradeupengine/internal/shared"
)

// ErrorHandlerMiddleware recovers panics and maps errors recorded on
// the gin context to HTTP responses: a *shared.AppError keeps its
// status and code, engine validation errors become 400s through
// shared.ToAppError, and anything else is a 500.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLogger(c)

		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("client_ip", c.ClientIP()),
					zap.Stack("stacktrace"),
				)

				if appErr, ok := r.(*shared.AppError); ok {
					shared.RespondWithAppError(c, appErr)
				} else {
					shared.RespondWithError(c, http.StatusInternalServerError, "internal server error")
				}
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		logger.Error("request finished with error",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
		)
		shared.RespondWithAppError(c, shared.ToAppError(err))
		c.Abort()
	}
}

// RecoveryMiddleware is the outer safety net for panics that escape
// ErrorHandlerMiddleware's own deferred recover.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		GetLogger(c).Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.Stack("stacktrace"),
		)
		shared.RespondWithError(c, http.StatusInternalServerError, "internal server error")
		c.Abort()
	})
}
