package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"academy/internal/pkg/apperr"
	"academy/internal/pkg/validator"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

// FromError renders err using its apperr kind. Errors outside the taxonomy
// are logged and reported as a generic internal error.
func FromError(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		if e.Details != nil {
			ErrorWithDetails(c, e.Kind.Status(), e.Code, e.Message, e.Details)
			return
		}
		Error(c, e.Kind.Status(), e.Code, e.Message)
		return
	}

	_ = c.Error(err)
	zap.L().Error("unhandled error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}

// BindError reports a request body that failed to decode or validate.
func BindError(c *gin.Context, err error) {
	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
}
