package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/models"
	"herdshare/internal/pagination"
)

// assetService handles the asset lifecycle and the payout engine.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// ownedAsset loads an asset and verifies the actor is the owning farmer.
func (s *assetService) ownedAsset(actor *models.User, assetID string) (*models.Asset, error) {
	if actor.Role != models.UserRoleFarmer || actor.FarmerID == nil {
		return nil, apperrors.ErrForbidden
	}

	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if asset.FarmerID != *actor.FarmerID {
		return nil, apperrors.ErrNotAssetOwner
	}
	return &asset, nil
}

// ListAsset validates a draft and creates a new open asset with nothing raised.
func (s *assetService) ListAsset(actor *models.User, draft AssetDraft) (*models.Asset, error) {
	if actor.Role != models.UserRoleFarmer || actor.FarmerID == nil {
		return nil, apperrors.ErrForbidden
	}

	if len(draft.Name) == 0 || len(draft.Name) > 100 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name must be between 1 and 100 characters")
	}
	if draft.PurchasePrice < 1 || draft.FundingGoal < 1 || draft.SharePrice < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase price, funding goal, and share price must all be positive")
	}
	if draft.FundingGoal > draft.PurchasePrice {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Funding goal cannot exceed the purchase price")
	}

	asset := &models.Asset{
		Name:          draft.Name,
		Type:          draft.Type,
		Breed:         draft.Breed,
		ImageURL:      draft.ImageURL,
		Description:   draft.Description,
		PurchasePrice: draft.PurchasePrice,
		FundingGoal:   draft.FundingGoal,
		SharePrice:    draft.SharePrice,
		AmountRaised:  0,
		Status:        models.AssetStatusOpen,
		FarmerID:      *actor.FarmerID,
	}
	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// UpdateAsset merges a partial edit. Cosmetic fields are editable while the
// asset is unresolved; pricing fields only before any investor money arrives.
func (s *assetService) UpdateAsset(actor *models.User, assetID string, update AssetUpdate) (*models.Asset, error) {
	asset, err := s.ownedAsset(actor, assetID)
	if err != nil {
		return nil, err
	}
	if asset.Status.Resolved() {
		return nil, apperrors.ErrAssetResolved
	}

	wantsPricing := update.PurchasePrice != nil || update.FundingGoal != nil || update.SharePrice != nil
	if wantsPricing && (asset.AmountRaised > 0 || asset.Status != models.AssetStatusOpen) {
		return nil, apperrors.ErrPricingLocked
	}

	if update.Name != nil {
		if len(*update.Name) == 0 || len(*update.Name) > 100 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name must be between 1 and 100 characters")
		}
		asset.Name = *update.Name
	}
	if update.Breed != nil {
		asset.Breed = *update.Breed
	}
	if update.ImageURL != nil {
		asset.ImageURL = *update.ImageURL
	}
	if update.Description != nil {
		asset.Description = *update.Description
	}

	if wantsPricing {
		if update.PurchasePrice != nil {
			asset.PurchasePrice = *update.PurchasePrice
		}
		if update.FundingGoal != nil {
			asset.FundingGoal = *update.FundingGoal
		}
		if update.SharePrice != nil {
			asset.SharePrice = *update.SharePrice
		}
		if asset.PurchasePrice < 1 || asset.FundingGoal < 1 || asset.SharePrice < 1 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase price, funding goal, and share price must all be positive")
		}
		if asset.FundingGoal > asset.PurchasePrice {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Funding goal cannot exceed the purchase price")
		}
	}

	if err := s.db.Save(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// GetAssets returns a paginated, optionally filtered asset listing.
func (s *assetService) GetAssets(filter AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	page.Defaults()

	base := s.db.Model(&models.Asset{})
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}
	if filter.FarmerID != nil {
		base = base.Where("farmer_id = ?", *filter.FarmerID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets []models.Asset
	if err := base.Preload("Farmer").Order("created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(assets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAssetByID returns a single asset with its farmer preloaded.
func (s *assetService) GetAssetByID(assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Preload("Farmer").First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// SellAsset resolves an asset as sold at the given price and freezes a
// payout for every linked investment:
//
//	payout = (shares / totalShares) × salePrice × investorOwnership
//
// Only open or funded assets can be sold; re-selling a resolved asset is
// rejected rather than silently recomputing payouts.
func (s *assetService) SellAsset(actor *models.User, assetID string, salePrice int64) (*models.Asset, error) {
	if salePrice <= 0 {
		return nil, apperrors.ErrInvalidSalePrice
	}

	asset, err := s.ownedAsset(actor, assetID)
	if err != nil {
		return nil, err
	}
	if asset.Status.Resolved() {
		return nil, apperrors.ErrAssetResolved
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		asset.Status = models.AssetStatusSold
		asset.SalePrice = &salePrice
		if txErr := tx.Save(asset).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		var investments []models.Investment
		if txErr := tx.Where("asset_id = ?", assetID).Find(&investments).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		for i := range investments {
			payout := asset.PayoutFor(investments[i].Shares, salePrice)
			if txErr := tx.Model(&investments[i]).Updates(map[string]interface{}{
				"payout":      payout,
				"payout_date": now,
			}).Error; txErr != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// MarkDeceased resolves an asset as deceased: every linked investment's
// payout is fixed at exactly zero.
func (s *assetService) MarkDeceased(actor *models.User, assetID string) (*models.Asset, error) {
	asset, err := s.ownedAsset(actor, assetID)
	if err != nil {
		return nil, err
	}
	if asset.Status.Resolved() {
		return nil, apperrors.ErrAssetResolved
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		asset.Status = models.AssetStatusDeceased
		if txErr := tx.Save(asset).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		if txErr := tx.Model(&models.Investment{}).
			Where("asset_id = ?", assetID).
			Updates(map[string]interface{}{
				"payout":      0,
				"payout_date": now,
			}).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}
