package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/localmaps-api/internal/dto"
	"github.com/prperemyshlev/localmaps-api/internal/service"
	"go.uber.org/zap"
)

// FavoritesHandler serves the saved places of the authenticated user
type FavoritesHandler struct {
	favorites service.FavoritesService
	logger    *zap.Logger
}

func NewFavoritesHandler(favorites service.FavoritesService, logger *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: favorites,
		logger:    logger,
	}
}

// Add saves a place for the current user
// @Summary Add a place to favorites
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.FavoriteRequest true "Place to save"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/favorites [post]
func (h *FavoritesHandler) Add(c *gin.Context) {
	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	added, err := h.favorites.AddFavorite(c.Request.Context(), c.GetString(ContextUserID), req.PlaceData)
	if err != nil {
		status, category := statusFor(err)
		abortWithError(c, status, category, err.Error())
		return
	}
	if !added {
		abortWithError(c, http.StatusBadRequest, "Bad request", "Place already in favorites")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Added to favorites",
	})
}

// Remove deletes a saved place
// @Summary Remove a place from favorites
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Param placeId path string true "Place ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/favorites/{placeId} [delete]
func (h *FavoritesHandler) Remove(c *gin.Context) {
	removed, err := h.favorites.RemoveFavorite(c.Request.Context(), c.GetString(ContextUserID), c.Param("placeId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}
	if !removed {
		abortWithError(c, http.StatusNotFound, "Not found", "Favorite not found")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Removed from favorites",
	})
}

// List returns the user's favorites, newest first
// @Summary List favorites
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.FavoritesResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	favorites, err := h.favorites.ListFavorites(c.Request.Context(), c.GetString(ContextUserID))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.FavoritesResponse{
		Success:   true,
		Favorites: favorites,
	})
}

// Check reports whether the place is saved. Anonymous callers and store
// failures both get false.
// @Summary Check if a place is a favorite
// @Tags favorites
// @Produce json
// @Param placeId path string true "Place ID"
// @Success 200 {object} dto.FavoriteCheckResponse
// @Router /auth/favorites/check/{placeId} [get]
func (h *FavoritesHandler) Check(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		c.JSON(http.StatusOK, dto.FavoriteCheckResponse{IsFavorite: false})
		return
	}

	ok, err := h.favorites.IsFavorite(c.Request.Context(), userID, c.Param("placeId"))
	if err != nil {
		h.logger.Warn("favorite check failed", zap.String("user_id", userID), zap.Error(err))
		ok = false
	}

	c.JSON(http.StatusOK, dto.FavoriteCheckResponse{IsFavorite: ok})
}
