package api

import (
	"errors"
	"net/http"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondData writes the success envelope: a message plus a data payload.
func respondData(c *gin.Context, code int, message string, data any) {
	c.JSON(code, gin.H{"message": message, "data": data})
}

// respondMessage writes a success envelope without a payload.
func respondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// abortWithMessage returns a JSON error response and aborts the request.
func abortWithMessage(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// abortServerError reports an unexpected failure with a generic message
// plus the underlying detail string.
func abortServerError(c *gin.Context, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"method":     c.Request.Method,
		"path":       c.FullPath(),
		"request_id": requestIDFromContext(c),
	}).Error("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

// handleServiceError maps the service failure taxonomy to HTTP statuses:
// validation 400, auth 401, not-found 404, conflict 409, everything else 500.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		abortWithMessage(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotAuthorized):
		abortWithMessage(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		abortWithMessage(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, service.ErrSameEmail),
		errors.Is(err, service.ErrSamePassword):
		abortWithMessage(c, http.StatusConflict, err.Error())
	default:
		abortServerError(c, err)
	}
}
