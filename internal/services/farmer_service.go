package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/models"
	"herdshare/internal/pagination"
)

// farmerService handles farmer profiles, derived reputation stats, and reviews.
type farmerService struct {
	db *gorm.DB
}

// NewFarmerService creates a new FarmerServicer.
func NewFarmerService(db *gorm.DB) FarmerServicer {
	return &farmerService{db: db}
}

// stats derives the reputation figures for a farmer from their assets and
// reviews. Recomputed on every read; nothing is stored.
func (s *farmerService) stats(farmerID string) (models.FarmerStats, error) {
	var stats models.FarmerStats

	var assets []models.Asset
	if err := s.db.Where("farmer_id = ?", farmerID).Find(&assets).Error; err != nil {
		return stats, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resolved := 0
	for i := range assets {
		stats.TotalAssets++
		stats.TotalRaised += assets[i].AmountRaised
		switch assets[i].Status {
		case models.AssetStatusSold:
			stats.TotalSold++
			resolved++
		case models.AssetStatusDeceased:
			resolved++
		}
	}
	if resolved > 0 {
		stats.SuccessRate = float64(stats.TotalSold) / float64(resolved) * 100
	}

	type ratingRow struct {
		Count int64
		Sum   int64
	}
	var row ratingRow
	if err := s.db.Model(&models.FarmerReview{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
		Where("farmer_id = ?", farmerID).
		Scan(&row).Error; err != nil {
		return stats, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	stats.ReviewCount = int(row.Count)
	if row.Count > 0 {
		stats.Rating = float64(row.Sum) / float64(row.Count)
	}

	return stats, nil
}

// GetFarmers returns a paginated list of farmer profiles with stats.
func (s *farmerService) GetFarmers(page pagination.PageRequest) (*pagination.PageResponse[FarmerProfile], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Farmer{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var farmers []models.Farmer
	if err := s.db.Order("created_at ASC").
		Scopes(pagination.Paginate(page)).Find(&farmers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profiles := make([]FarmerProfile, 0, len(farmers))
	for i := range farmers {
		stats, err := s.stats(farmers[i].ID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, FarmerProfile{Farmer: farmers[i], Stats: stats})
	}

	result := pagination.NewPageResponse(profiles, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetFarmerByID returns a single farmer profile with stats.
func (s *farmerService) GetFarmerByID(farmerID string) (*FarmerProfile, error) {
	var farmer models.Farmer
	if err := s.db.First(&farmer, "id = ?", farmerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFarmerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats, err := s.stats(farmerID)
	if err != nil {
		return nil, err
	}
	return &FarmerProfile{Farmer: farmer, Stats: stats}, nil
}

// CreateReview records an investor's rating of a farmer for a resolved
// asset. One review per (investor, asset) pair; the investor must actually
// hold an investment in the asset.
func (s *farmerService) CreateReview(actor *models.User, farmerID, assetID string, rating int, comment string) (*models.FarmerReview, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Rating must be between 1 and 5")
	}
	if actor.Role != models.UserRoleInvestor {
		return nil, apperrors.ErrReviewNotAllowed
	}

	var farmer models.Farmer
	if err := s.db.First(&farmer, "id = ?", farmerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFarmerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if asset.FarmerID != farmerID || !asset.Status.Resolved() {
		return nil, apperrors.ErrReviewNotAllowed
	}

	var held int64
	if err := s.db.Model(&models.Investment{}).
		Where("user_id = ? AND asset_id = ?", actor.ID, assetID).
		Count(&held).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if held == 0 {
		return nil, apperrors.ErrReviewNotAllowed
	}

	var existing int64
	if err := s.db.Model(&models.FarmerReview{}).
		Where("investor_id = ? AND asset_id = ?", actor.ID, assetID).
		Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil, apperrors.ErrDuplicateReview
	}

	review := &models.FarmerReview{
		FarmerID:     farmerID,
		InvestorID:   actor.ID,
		InvestorName: actor.Name,
		AssetID:      assetID,
		Rating:       rating,
		Comment:      comment,
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return review, nil
}

// GetFarmerReviews returns a paginated list of reviews for a farmer,
// newest first.
func (s *farmerService) GetFarmerReviews(farmerID string, page pagination.PageRequest) (*pagination.PageResponse[models.FarmerReview], error) {
	var farmer models.Farmer
	if err := s.db.First(&farmer, "id = ?", farmerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFarmerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.FarmerReview{}).Where("farmer_id = ?", farmerID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var reviews []models.FarmerReview
	if err := s.db.Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&reviews).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(reviews, page.Page, page.PageSize, totalItems)
	return &result, nil
}
