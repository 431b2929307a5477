package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/localmaps-api/internal/apperrors"
	"github.com/prperemyshlev/localmaps-api/internal/dto"
	"github.com/prperemyshlev/localmaps-api/internal/service"
)

// SearchHandler serves business search and place details
type SearchHandler struct {
	search service.SearchService
}

func NewSearchHandler(search service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search finds independent businesses near a location
// @Summary Search small businesses
// @Tags search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search request"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	places, err := h.search.Search(c.Request.Context(), req.Query, *req.Location.Lat, *req.Location.Lng)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, "Validation failed", "Query cannot be empty")
			return
		}
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error",
			"Failed to search for places: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success: true,
		Places:  places,
		Total:   len(places),
	})
}

// PlaceDetails returns the provider's details payload unchanged
// @Summary Get place details
// @Tags search
// @Produce json
// @Param placeId path string true "Place ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.ErrorResponse
// @Router /place/{placeId} [get]
func (h *SearchHandler) PlaceDetails(c *gin.Context) {
	details, err := h.search.GetPlaceDetails(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error",
			"Failed to get place details: "+err.Error())
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", details)
}
