package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Constants for context keys
const (
	ContextIdentityKey  = "identity"
	ContextRequestIDKey = "requestID"
)

const requestIDHeader = "X-Request-Id"

// AuthMiddleware resolves the bearer token into an identity snapshot and
// attaches it to the request context. Mandatory for everything except
// registration and login.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithMessage(c, http.StatusUnauthorized, "Token is missing or not provided")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithMessage(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		identity, err := authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				abortWithMessage(c, http.StatusNotFound, "User not found")
				return
			}
			// Signature, expiry and claim failures all read the same to the
			// caller.
			abortWithMessage(c, http.StatusUnauthorized, "User is not authorized")
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}

// RequestIDMiddleware tags every request with an ID, honoring one supplied
// by the caller.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogMiddleware logs each handled request with its outcome.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": requestIDFromContext(c),
		}).Info("request handled")
	}
}

// identityFromContext returns the identity set by AuthMiddleware.
func identityFromContext(c *gin.Context) (*domain.Identity, error) {
	raw, exists := c.Get(ContextIdentityKey)
	if !exists {
		return nil, errors.New("identity not found in context")
	}
	identity, ok := raw.(*domain.Identity)
	if !ok {
		return nil, errors.New("invalid identity type in context")
	}
	return identity, nil
}

func requestIDFromContext(c *gin.Context) string {
	return c.GetString(ContextRequestIDKey)
}
