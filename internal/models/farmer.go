package models

// Farmer represents a farmer profile that lists assets on the marketplace.
type Farmer struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	FarmName    string `gorm:"not null" json:"farm_name"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
	ImageURL    string `json:"image_url"`
	Established int    `json:"established,omitempty"` // year the farm was established
	Specialties string `json:"specialties,omitempty"` // comma-separated, e.g. "Beef,Organic"

	// Relationships
	Assets  []Asset        `gorm:"foreignKey:FarmerID" json:"assets,omitempty"`
	Reviews []FarmerReview `gorm:"foreignKey:FarmerID" json:"reviews,omitempty"`
}

// FarmerStats holds reputation figures derived from the farmer's assets
// and reviews. Never stored; recomputed on read.
type FarmerStats struct {
	TotalAssets int     `json:"total_assets"`
	TotalSold   int     `json:"total_sold"`
	SuccessRate float64 `json:"success_rate"` // % of resolved assets that sold
	TotalRaised int64   `json:"total_raised"`
	Rating      float64 `json:"rating"` // mean review rating, 0 when unreviewed
	ReviewCount int     `json:"review_count"`
}

// FarmerReview is a rating left by an investor for a farmer, tied to a
// specific asset. At most one review exists per (investor, asset) pair.
type FarmerReview struct {
	Base
	FarmerID     string `gorm:"type:uuid;not null;index" json:"farmer_id"`
	InvestorID   string `gorm:"type:uuid;not null" json:"investor_id"`
	InvestorName string `json:"investor_name"`
	AssetID      string `gorm:"type:uuid;not null" json:"asset_id"`
	Rating       int    `gorm:"not null" json:"rating"` // 1-5 stars
	Comment      string `json:"comment,omitempty"`
}
