package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/localmaps-api/internal/apperrors"
	"github.com/prperemyshlev/localmaps-api/internal/service"
	"github.com/prperemyshlev/localmaps-api/internal/utils"
)

const (
	ContextUserID = "user_id"
	ContextToken  = "session_token"

	notAuthenticated = "Not authenticated"
)

// AuthMiddleware validates the session token and adds the user id to context.
// Every authentication failure produces the same 401 response; store
// failures are reported as 500.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := utils.ExtractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "Unauthorized", notAuthenticated)
			return
		}

		userID, err := authService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				abortWithError(c, http.StatusUnauthorized, "Unauthorized", notAuthenticated)
				return
			}
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Internal server error", "Failed to verify session")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextToken, token)

		c.Next()
	}
}

// OptionalAuthMiddleware sets the user id when a valid session is presented
// and never aborts the request.
func OptionalAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := utils.ExtractBearerToken(c.GetHeader("Authorization")); ok {
			if userID, err := authService.ValidateSession(c.Request.Context(), token); err == nil {
				c.Set(ContextUserID, userID)
				c.Set(ContextToken, token)
			}
		}
		c.Next()
	}
}
