package models

// Favorite marks an asset as favorited by a user. Purely cosmetic set
// membership; no financial effect.
type Favorite struct {
	Base
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_asset" json:"user_id"`
	AssetID string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_asset" json:"asset_id"`
}
