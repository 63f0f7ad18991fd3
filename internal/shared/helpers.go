package shared

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const loggerContextKey = "logger"

// getLogger retrieves the zap logger from the Gin context.
// Returns a no-op logger if not found in context.
func getLogger(c *gin.Context) *zap.Logger {
	if logger, exists := c.Get(loggerContextKey); exists {
		if zapLogger, ok := logger.(*zap.Logger); ok {
			return zapLogger
		}
	}
	return zap.NewNop()
}

// RespondWithError sends an error response.
func RespondWithError(c *gin.Context, statusCode int, message string) {
	getLogger(c).Error("http error response",
		zap.Int("status_code", statusCode),
		zap.String("message", message),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// RespondWithAppError sends an AppError response.
func RespondWithAppError(c *gin.Context, err *AppError) {
	getLogger(c).Error("http app error response",
		zap.Int("status_code", err.StatusCode),
		zap.String("error_code", err.Code),
		zap.String("message", err.Message),
		zap.Any("details", err.Details),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(err.StatusCode, err.ToResponse())
}

// HandleError converts err to an AppError and writes the matching response.
func HandleError(c *gin.Context, err error) {
	if appErr := ToAppError(err); appErr != nil {
		RespondWithAppError(c, appErr)
		return
	}
	RespondWithError(c, http.StatusInternalServerError, "internal server error")
}

// RespondWithSuccess sends a success response with data.
func RespondWithSuccess[T any](c *gin.Context, statusCode int, message string, data T) {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	getLogger(c).Info("http success response",
		zap.Int("status_code", statusCode),
		zap.String("message", message),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(statusCode, SuccessResponse[T]{
		Status:  statusCode,
		Message: message,
		Data:    data,
	})
}
