package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/models"
)

// favoriteService handles the cosmetic per-user favorites set.
type favoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new FavoriteServicer.
func NewFavoriteService(db *gorm.DB) FavoriteServicer {
	return &favoriteService{db: db}
}

// Toggle flips set membership of an asset in the actor's favorites and
// reports whether the asset is favorited after the call.
func (s *favoriteService) Toggle(actor *models.User, assetID string) (bool, error) {
	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrAssetNotFound
		}
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var favorite models.Favorite
	err := s.db.Where("user_id = ? AND asset_id = ?", actor.ID, assetID).First(&favorite).Error
	switch {
	case err == nil:
		// Hard delete so the (user, asset) unique index can be reused
		if err := s.db.Unscoped().Delete(&favorite).Error; err != nil {
			return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		favorite = models.Favorite{UserID: actor.ID, AssetID: assetID}
		if err := s.db.Create(&favorite).Error; err != nil {
			return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return true, nil
	default:
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// List returns the asset IDs the user has favorited.
func (s *favoriteService) List(userID string) ([]string, error) {
	var assetIDs []string
	if err := s.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("asset_id", &assetIDs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if assetIDs == nil {
		assetIDs = []string{}
	}
	return assetIDs, nil
}
