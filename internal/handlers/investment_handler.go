package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/pagination"
	"herdshare/internal/services"
)

// InvestmentHandler handles share purchases and portfolio reads.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// BuySharesRequest represents the request payload for buying shares.
type BuySharesRequest struct {
	AssetID string  `json:"asset_id" binding:"required"`
	Shares  float64 `json:"shares" binding:"required"`
}

// PayoutPreviewRequest represents the query parameters for a what-if payout.
type PayoutPreviewRequest struct {
	Shares    float64 `form:"shares" binding:"required"`
	SalePrice int64   `form:"sale_price" binding:"required"`
}

// BuyShares handles purchasing shares in an open asset.
// @Summary     Buy shares
// @Description Buy shares in an open asset; the cost is computed from the asset's share price
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string           true "Acting user ID"
// @Param       request   body   BuySharesRequest true "Purchase details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid share count or insufficient shares"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Asset not open for funding"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) BuyShares(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BuySharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.investmentService.BuyShares(actor, req.AssetID, req.Shares)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// GetMyInvestments handles listing the acting user's investments.
// @Summary     Get my investments
// @Description Get a paginated list of the acting user's investments, newest first
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Acting user ID"
// @Param       page      query  int    false "Page number (default 1)"
// @Param       page_size query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Investment] "Paginated investments"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetMyInvestments(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.investmentService.GetUserInvestments(actor.ID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetInvestment handles retrieving one of the acting user's investments.
// @Summary     Get investment by ID
// @Description Get a specific investment owned by the acting user
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Acting user ID"
// @Param       id        path   string true "Investment ID"
// @Success     200 {object} models.Investment "Investment details"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.GetInvestmentByID(actor.ID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// GetPortfolio handles retrieving the acting user's aggregated portfolio.
// @Summary     Get portfolio summary
// @Description Get the acting user's holdings bucketed into active, completed, and lost
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Acting user ID"
// @Success     200 {object} services.PortfolioSummary "Portfolio summary"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *InvestmentHandler) GetPortfolio(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.investmentService.GetPortfolio(actor.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolio": summary})
}

// GetAssetInvestments handles listing the investments in an asset,
// visible only to the asset's farmer.
// @Summary     Get asset investments
// @Description Get a paginated list of investments in an asset (asset's farmer only)
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Acting user ID"
// @Param       id        path   string true "Asset ID"
// @Param       page      query  int    false "Page number (default 1)"
// @Param       page_size query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Investment] "Paginated investments"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     403 {object} ErrorResponse "Not the asset's farmer"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/investments [get]
func (h *InvestmentHandler) GetAssetInvestments(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.investmentService.GetAssetInvestments(actor, c.Param("id"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PreviewPayout handles a what-if payout computation. Nothing is stored.
// @Summary     Preview payout
// @Description Compute the cost and estimated payout for a hypothetical share purchase and sale price
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       id         path  string  true "Asset ID"
// @Param       shares     query number  true "Share count"
// @Param       sale_price query int     true "Hypothetical sale price in pence"
// @Success     200 {object} services.PayoutPreview "Payout preview"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/payout-preview [get]
func (h *InvestmentHandler) PreviewPayout(c *gin.Context) {
	var req PayoutPreviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	preview, err := h.investmentService.PreviewPayout(c.Param("id"), req.Shares, req.SalePrice)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preview": preview})
}
