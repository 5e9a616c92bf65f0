package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jwalitptl/passmeter/pkg/errors"
)

// ContextRequestID is the gin context key holding the request id.
const ContextRequestID = "request_id"

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// StatusOf returns the HTTP status for err. Unknown errors are 500.
func StatusOf(err error) int {
	if appErr, ok := errors.As(err); ok {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message for err. Messages of unknown
// errors are not exposed.
func MessageOf(err error) string {
	if appErr, ok := errors.As(err); ok {
		return appErr.Message
	}
	return "Internal server error"
}

// RespondWithSuccess sends data as-is with a 200 status
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err error) {
	RespondWithStatus(c, StatusOf(err), MessageOf(err))
}

// RespondWithStatus aborts the request with an error envelope.
func RespondWithStatus(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:    status,
		Message: message,
		TraceID: c.GetString(ContextRequestID),
	})
}
