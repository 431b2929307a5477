package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/localmaps-api/internal/apperrors"
	"github.com/prperemyshlev/localmaps-api/internal/dto"
	"github.com/prperemyshlev/localmaps-api/internal/service"
	"github.com/prperemyshlev/localmaps-api/internal/utils"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	response, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			abortWithError(c, http.StatusBadRequest, "Bad request", "Username or email already exists")
			return
		}
		status, category := statusFor(err)
		abortWithError(c, status, category, err.Error())
		return
	}

	c.JSON(http.StatusOK, response)
}

// Login handles user login
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			abortWithError(c, http.StatusUnauthorized, "Unauthorized", "Invalid username or password")
			return
		}
		status, category := statusFor(err)
		abortWithError(c, status, category, err.Error())
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout deletes the presented session. Unknown tokens still succeed.
// @Summary Logout user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := utils.ExtractBearerToken(c.GetHeader("Authorization"))
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "Unauthorized", notAuthenticated)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// GetMe handles getting current user profile
// @Summary Get current user profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		abortWithError(c, http.StatusUnauthorized, "Unauthorized", notAuthenticated)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Not found", "User not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		Success: true,
		User:    *user,
	})
}
