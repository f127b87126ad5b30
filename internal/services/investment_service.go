package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/models"
	"herdshare/internal/pagination"
)

// investmentService handles share purchases and portfolio reads.
type investmentService struct {
	db           *gorm.DB
	assetService AssetServicer
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB, assetService AssetServicer) InvestmentServicer {
	return &investmentService{db: db, assetService: assetService}
}

// BuyShares purchases shares of an open asset for the acting user. The cost
// is computed here, not supplied by the caller, and every bound is checked
// in this operation: the asset must be open, the share count at least one,
// and no larger than the shares remaining. A purchase that meets the funding
// goal flips the asset to funded in the same transaction, so amountRaised
// can never overshoot the goal.
func (s *investmentService) BuyShares(actor *models.User, assetID string, shares float64) (*models.Investment, error) {
	if shares < 1 {
		return nil, apperrors.ErrInvalidShareCount
	}

	var investment *models.Investment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if txErr := tx.First(&asset, "id = ?", assetID).Error; txErr != nil {
			if errors.Is(txErr, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssetNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		if asset.Status != models.AssetStatusOpen {
			return apperrors.ErrAssetNotOpen
		}

		cost, whole := asset.CostOf(shares)
		if !whole {
			return apperrors.WithMessage(apperrors.ErrInvalidShareCount, "Share count must price to a whole number of pence")
		}
		if cost > asset.FundingGoal-asset.AmountRaised {
			return apperrors.ErrInsufficientShares
		}

		investment = &models.Investment{
			AssetID:      assetID,
			UserID:       actor.ID,
			Shares:       shares,
			AmountPaid:   cost,
			PurchaseDate: time.Now(),
		}
		if txErr := tx.Create(investment).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		asset.AmountRaised += cost
		if asset.AmountRaised >= asset.FundingGoal {
			asset.Status = models.AssetStatusFunded
		}
		if txErr := tx.Save(&asset).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return investment, nil
}

// GetUserInvestments returns the user's investments, newest first.
func (s *investmentService) GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Investment{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := s.db.Preload("Asset").Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Scopes(pagination.Paginate(page)).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAssetInvestments returns the investments in an asset. Restricted to
// the owning farmer.
func (s *investmentService) GetAssetInvestments(actor *models.User, assetID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	asset, err := s.assetService.GetAssetByID(assetID)
	if err != nil {
		return nil, err
	}
	if actor.FarmerID == nil || asset.FarmerID != *actor.FarmerID {
		return nil, apperrors.ErrNotAssetOwner
	}

	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Investment{}).Where("asset_id = ?", assetID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := s.db.Where("asset_id = ?", assetID).
		Order("purchase_date DESC").
		Scopes(pagination.Paginate(page)).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetInvestmentByID returns an investment if it belongs to the given user.
func (s *investmentService) GetInvestmentByID(userID, investmentID string) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.Preload("Asset").First(&investment, "id = ?", investmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if investment.UserID != userID {
		return nil, apperrors.ErrInvestmentNotFound
	}
	return &investment, nil
}

// GetPortfolio aggregates the user's investments into active, completed
// (sold), and lost (deceased) buckets.
func (s *investmentService) GetPortfolio(userID string) (*PortfolioSummary, error) {
	var investments []models.Investment
	if err := s.db.Preload("Asset").Where("user_id = ?", userID).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &PortfolioSummary{}
	for i := range investments {
		inv := &investments[i]
		summary.TotalInvested += inv.AmountPaid

		switch inv.Asset.Status {
		case models.AssetStatusSold:
			summary.CompletedCount++
			if inv.Payout != nil {
				summary.TotalReturned += *inv.Payout
			}
		case models.AssetStatusDeceased:
			summary.LostCount++
			summary.TotalLost += inv.AmountPaid
		default:
			summary.ActiveCount++
			summary.ActiveValue += inv.AmountPaid
		}
	}
	return summary, nil
}

// PreviewPayout computes the payout a holding of the given shares would
// receive were the asset to sell at salePrice. Pure; nothing is stored.
func (s *investmentService) PreviewPayout(assetID string, shares float64, salePrice int64) (*PayoutPreview, error) {
	if shares < 1 {
		return nil, apperrors.ErrInvalidShareCount
	}
	if salePrice <= 0 {
		return nil, apperrors.ErrInvalidSalePrice
	}

	asset, err := s.assetService.GetAssetByID(assetID)
	if err != nil {
		return nil, err
	}

	cost, whole := asset.CostOf(shares)
	if !whole {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidShareCount, "Share count must price to a whole number of pence")
	}

	ownershipPct := 0.0
	if total := asset.TotalShares(); total > 0 {
		ownershipPct = shares / total * asset.InvestorOwnership() * 100
	}

	return &PayoutPreview{
		Shares:          shares,
		SalePrice:       salePrice,
		Cost:            cost,
		OwnershipPct:    ownershipPct,
		EstimatedPayout: asset.PayoutFor(shares, salePrice),
	}, nil
}
