package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/models"
	"herdshare/internal/pagination"
	"herdshare/internal/services"
)

// AssetHandler handles asset lifecycle requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAssetRequest represents the request payload for listing a new asset.
// Monetary amounts are in pence.
type CreateAssetRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Type          string `json:"type" binding:"required,animal_type"`
	Breed         string `json:"breed" binding:"max=100"`
	ImageURL      string `json:"image_url" binding:"max=500"`
	Description   string `json:"description" binding:"max=2000"`
	PurchasePrice int64  `json:"purchase_price" binding:"required,gt=0"`
	FundingGoal   int64  `json:"funding_goal" binding:"required,gt=0"`
	SharePrice    int64  `json:"share_price" binding:"required,gt=0"`
}

// UpdateAssetRequest represents a partial asset edit. Omitted fields are
// left unchanged; pricing fields are rejected once funding has started.
type UpdateAssetRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Breed       *string `json:"breed" binding:"omitempty,max=100"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=500"`
	Description *string `json:"description" binding:"omitempty,max=2000"`

	PurchasePrice *int64 `json:"purchase_price" binding:"omitempty,gt=0"`
	FundingGoal   *int64 `json:"funding_goal" binding:"omitempty,gt=0"`
	SharePrice    *int64 `json:"share_price" binding:"omitempty,gt=0"`
}

// AssetFilterRequest represents the query filters for listing assets.
type AssetFilterRequest struct {
	Status   string `form:"status" binding:"omitempty,asset_status"`
	Type     string `form:"type" binding:"omitempty,animal_type"`
	FarmerID string `form:"farmer_id" binding:"omitempty"`
}

// SellAssetRequest represents the request payload for selling an asset.
type SellAssetRequest struct {
	SalePrice int64 `json:"sale_price" binding:"required"`
}

// CreateAsset handles listing a new asset for funding.
// @Summary     List asset
// @Description List a new animal asset for fractional investment
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string             true "Acting user ID"
// @Param       request   body   CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     403 {object} ErrorResponse "Not a farmer"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.ListAsset(actor, services.AssetDraft{
		Name:          req.Name,
		Type:          req.Type,
		Breed:         req.Breed,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
		PurchasePrice: req.PurchasePrice,
		FundingGoal:   req.FundingGoal,
		SharePrice:    req.SharePrice,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset, "metrics": asset.Metrics()})
}

// GetAssets handles browsing assets with optional filters.
// @Summary     Browse assets
// @Description Get a paginated list of assets, optionally filtered by status, type, or farmer
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       status    query string false "Asset status (open, funded, sold, deceased)"
// @Param       type      query string false "Animal type"
// @Param       farmer_id query string false "Farmer ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Paginated assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
	var filterReq AssetFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.AssetFilter
	if filterReq.Status != "" {
		status := models.AssetStatus(filterReq.Status)
		filter.Status = &status
	}
	if filterReq.Type != "" {
		filter.Type = &filterReq.Type
	}
	if filterReq.FarmerID != "" {
		filter.FarmerID = &filterReq.FarmerID
	}

	result, err := h.assetService.GetAssets(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAsset handles retrieving a single asset with its derived metrics.
// @Summary     Get asset by ID
// @Description Get an asset and its derived share/ownership/payout figures
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     200 {object} models.Asset "Asset details"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.assetService.GetAssetByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset, "metrics": asset.Metrics()})
}

// UpdateAsset handles editing an asset's listing.
// @Summary     Update asset
// @Description Edit an asset's listing; pricing fields lock once funding has started
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string             true "Acting user ID"
// @Param       id        path   string             true "Asset ID"
// @Param       request   body   UpdateAssetRequest true "Fields to change"
// @Success     200 {object} models.Asset "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     403 {object} ErrorResponse "Not the asset's farmer"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Pricing locked or asset resolved"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [patch]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(actor, c.Param("id"), services.AssetUpdate{
		Name:          req.Name,
		Breed:         req.Breed,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
		PurchasePrice: req.PurchasePrice,
		FundingGoal:   req.FundingGoal,
		SharePrice:    req.SharePrice,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset, "metrics": asset.Metrics()})
}

// SellAsset handles resolving an asset as sold, distributing payouts.
// @Summary     Sell asset
// @Description Resolve an asset as sold at a price, computing and freezing every investor payout
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string           true "Acting user ID"
// @Param       id        path   string           true "Asset ID"
// @Param       request   body   SellAssetRequest true "Sale price in pence"
// @Success     200 {object} models.Asset "Sold asset"
// @Failure     400 {object} ErrorResponse "Invalid sale price"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     403 {object} ErrorResponse "Not the asset's farmer"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Asset already resolved"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/sell [post]
func (h *AssetHandler) SellAsset(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SellAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.SellAsset(actor, c.Param("id"), req.SalePrice)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset, "metrics": asset.Metrics()})
}

// MarkDeceased handles resolving an asset as deceased, zeroing payouts.
// @Summary     Mark asset deceased
// @Description Resolve an asset as deceased; all investor payouts are zero
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Acting user ID"
// @Param       id        path   string true "Asset ID"
// @Success     200 {object} models.Asset "Deceased asset"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     403 {object} ErrorResponse "Not the asset's farmer"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Asset already resolved"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/deceased [post]
func (h *AssetHandler) MarkDeceased(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.MarkDeceased(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset, "metrics": asset.Metrics()})
}
