package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/pagination"
	"herdshare/internal/services"
)

// FarmerHandler handles farmer profile and review requests.
type FarmerHandler struct {
	farmerService services.FarmerServicer
}

// NewFarmerHandler creates a new FarmerHandler.
func NewFarmerHandler(farmerService services.FarmerServicer) *FarmerHandler {
	return &FarmerHandler{farmerService: farmerService}
}

// CreateReviewRequest represents the request payload for reviewing a farmer.
type CreateReviewRequest struct {
	AssetID string `json:"asset_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

// GetFarmers handles listing farmer profiles with derived stats.
// @Summary     Browse farmers
// @Description Get a paginated list of farmer profiles with reputation stats
// @Tags        farmers
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.FarmerProfile] "Paginated farmers"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /farmers [get]
func (h *FarmerHandler) GetFarmers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.farmerService.GetFarmers(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFarmer handles retrieving a farmer profile with derived stats.
// @Summary     Get farmer by ID
// @Description Get a farmer profile with success rate, rating, and totals
// @Tags        farmers
// @Accept      json
// @Produce     json
// @Param       id path string true "Farmer ID"
// @Success     200 {object} services.FarmerProfile "Farmer profile"
// @Failure     404 {object} ErrorResponse "Farmer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /farmers/{id} [get]
func (h *FarmerHandler) GetFarmer(c *gin.Context) {
	profile, err := h.farmerService.GetFarmerByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmer": profile})
}

// CreateReview handles an investor reviewing a farmer for a resolved asset.
// @Summary     Review farmer
// @Description Leave a rating for a farmer; requires a resolved investment in the farmer's asset
// @Tags        farmers
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string              true "Acting user ID"
// @Param       id        path   string              true "Farmer ID"
// @Param       request   body   CreateReviewRequest true "Review details"
// @Success     201 {object} models.FarmerReview "Review created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     403 {object} ErrorResponse "Review not allowed"
// @Failure     404 {object} ErrorResponse "Farmer or asset not found"
// @Failure     409 {object} ErrorResponse "Already reviewed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /farmers/{id}/reviews [post]
func (h *FarmerHandler) CreateReview(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	review, err := h.farmerService.CreateReview(actor, c.Param("id"), req.AssetID, req.Rating, req.Comment)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// GetFarmerReviews handles listing a farmer's reviews.
// @Summary     Get farmer reviews
// @Description Get a paginated list of reviews for a farmer, newest first
// @Tags        farmers
// @Accept      json
// @Produce     json
// @Param       id        path  string true "Farmer ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.FarmerReview] "Paginated reviews"
// @Failure     404 {object} ErrorResponse "Farmer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /farmers/{id}/reviews [get]
func (h *FarmerHandler) GetFarmerReviews(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.farmerService.GetFarmerReviews(c.Param("id"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
