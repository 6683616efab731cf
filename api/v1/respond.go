package v1

import (
	"errors"
	"net/http"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status codes with the standard
// error envelope
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case apperrors.IsInvalidTransition(err):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperrors.ErrPreconditionFailed):
		status = http.StatusPreconditionFailed
		message = err.Error()
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperrors.ErrUpstream):
		status = http.StatusBadGateway
		message = err.Error()
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

// bindError responds to a request body that failed binding/validation
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// actorID returns the authenticated user's ID from the context (set by
// AuthMiddleware)
func actorID(c *gin.Context) string {
	userID, exists := c.Get("userId")
	if !exists {
		return ""
	}
	id, _ := userID.(string)
	return id
}
