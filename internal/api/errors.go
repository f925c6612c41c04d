package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"uni3_backend/internal/middleware"
	"uni3_backend/internal/service"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// statusFor maps a service error kind to its HTTP status
func statusFor(kind error) int {
	switch {
	case errors.Is(kind, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(kind, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, service.ErrAlreadyDelivered):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes client errors as they are and hides internal ones behind internalDetail
func respondError(c *gin.Context, op string, err error, internalDetail string) {
	var se *service.Error
	if errors.As(err, &se) {
		c.JSON(statusFor(se.Kind), gin.H{"detail": se.Detail})
		return
	}
	_ = c.Error(err) // Attach to the context for the access log
	logrus.WithFields(logrus.Fields{
		"request_id": middleware.RequestID(c), // Correlates with the access log line
		"operation":  op,                      // Which endpoint failed
		"error":      err.Error(),             // Full detail stays server side
	}).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"detail": internalDetail})
}

// invalidRequest answers a request that failed binding or validation
func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request", "error": err.Error()})
}
