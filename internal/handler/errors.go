package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/localmaps-api/internal/apperrors"
	"github.com/prperemyshlev/localmaps-api/internal/dto"
)

// statusFor maps service errors to an HTTP status and error category
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "Validation failed"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusBadRequest, "Bad request"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func abortWithError(c *gin.Context, status int, category, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Error:   category,
		Message: message,
	})
}

func bindingError(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, "Validation failed", err.Error())
}
