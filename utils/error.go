package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of non-GraphQL failures, shaped like a GraphQL
// error list so clients parse one format.
type ErrorResponse struct {
	Errors []ErrorEntry `json:"errors"`
}

type ErrorEntry struct {
	Message    string            `json:"message"`
	Extensions map[string]string `json:"extensions,omitempty"`
}

// ErrorHandler recovers panics outside the GraphQL executor.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				AbortWithError(c, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred. Please try again later.")
			}
		}()
		c.Next()
	}
}

// AbortWithError stops the chain and writes a single coded error.
func AbortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Errors: []ErrorEntry{{
		Message:    message,
		Extensions: map[string]string{"code": code},
	}}})
}
