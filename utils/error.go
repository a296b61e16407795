package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// APIError is a user-facing error with an HTTP status code attached.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func NewValidationError(message string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Code: http.StatusNotFound, Message: message}
}

// NewConflictError covers seat collisions, exhausted capacity and repeated
// cancellations. The original API surfaces these as 400s, not 409s.
func NewConflictError(message string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *APIError {
	return &APIError{Code: http.StatusUnauthorized, Message: message}
}

func NewForbiddenError(message string) *APIError {
	return &APIError{Code: http.StatusForbidden, Message: message}
}

// ErrorHandler is a middleware that catches panics and returns structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}

// RespondError maps an error to the API's {success, message} envelope.
// APIError carries its own status; Mongo duplicate-key violations become
// "<field> already exists"; anything else is logged and returned as a 500.
func RespondError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Code, gin.H{"success": false, "message": apiErr.Message})
		return
	}

	if mongo.IsDuplicateKeyError(err) {
		field := duplicateKeyField(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": field + " already exists"})
		return
	}

	GetLogger().Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
}

// duplicateKeyField pulls the offending index name out of a duplicate-key
// error message, e.g. "... index: bookingId_1 dup key ..." -> "bookingId".
func duplicateKeyField(err error) string {
	msg := err.Error()
	idx := strings.Index(msg, "index: ")
	if idx == -1 {
		return "field"
	}
	rest := msg[idx+len("index: "):]
	if end := strings.IndexAny(rest, " "); end != -1 {
		rest = rest[:end]
	}
	// Index names follow the "<field>_1" convention.
	if cut := strings.LastIndex(rest, "_"); cut > 0 {
		rest = rest[:cut]
	}
	return rest
}
