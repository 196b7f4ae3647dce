// file: internal/server/error_handler.go
// version: 2.0.0
// guid: 5d6e7f8a-9b0c-1d2e-3f4a-5b6c7d8e9f0a

package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/isbn-catalog/internal/logging"
)

// ErrorResponse provides a consistent error response format
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Status int    `json:"status"`
}

// RespondWithError sends a standardized error response and logs the error
func RespondWithError(c *gin.Context, statusCode int, message string, code string) {
	logErrorWithContext(c, statusCode, message)

	c.JSON(statusCode, ErrorResponse{
		Error:  message,
		Code:   code,
		Status: statusCode,
	})
}

// RespondWithBadRequest sends a 400 Bad Request error response
func RespondWithBadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, message, "BAD_REQUEST")
}

// RespondWithNotFound sends a 404 Not Found error response
func RespondWithNotFound(c *gin.Context, resourceType string, id string) {
	message := resourceType + " not found"
	if id != "" {
		message = message + ": " + id
	}
	RespondWithError(c, http.StatusNotFound, message, "NOT_FOUND")
}

// RespondWithInternalError sends a 500 Internal Server Error response
func RespondWithInternalError(c *gin.Context, message string) {
	RespondWithError(c, http.StatusInternalServerError, message, "INTERNAL_ERROR")
}

func logErrorWithContext(c *gin.Context, statusCode int, message string) {
	if statusCode >= 500 {
		logging.Errorf("%s %s %d - %s (from %s)", c.Request.Method, c.Request.URL.Path, statusCode, message, c.ClientIP())
		return
	}
	logging.Warnf("%s %s %d - %s (from %s)", c.Request.Method, c.Request.URL.Path, statusCode, message, c.ClientIP())
}

// HandleBindError handles JSON binding errors with a consistent response.
// It reports whether a response was written.
func HandleBindError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	if strings.Contains(errMsg, "too large") {
		RespondWithError(c, http.StatusRequestEntityTooLarge, "request body too large", "BODY_TOO_LARGE")
		return true
	}
	RespondWithBadRequest(c, "invalid request: "+errMsg)
	return true
}
