package services

import (
	"herdshare/internal/models"
	"herdshare/internal/pagination"
	"herdshare/internal/snapshot"
)

// AssetDraft holds the fields a farmer supplies when listing a new asset.
// Monetary amounts are in pence.
type AssetDraft struct {
	Name          string
	Type          string
	Breed         string
	ImageURL      string
	Description   string
	PurchasePrice int64
	FundingGoal   int64
	SharePrice    int64
}

// AssetUpdate holds a partial asset edit. Nil fields are left unchanged.
// Pricing fields are only editable while no investor money has arrived.
type AssetUpdate struct {
	Name        *string
	Breed       *string
	ImageURL    *string
	Description *string

	PurchasePrice *int64
	FundingGoal   *int64
	SharePrice    *int64
}

// AssetFilter holds optional filters for listing assets.
type AssetFilter struct {
	Status   *models.AssetStatus
	Type     *string
	FarmerID *string
}

// AssetServicer defines the contract for the asset lifecycle: listing,
// editing, and the terminal sell/deceased transitions with their payouts.
type AssetServicer interface {
	ListAsset(actor *models.User, draft AssetDraft) (*models.Asset, error)
	UpdateAsset(actor *models.User, assetID string, update AssetUpdate) (*models.Asset, error)
	GetAssets(filter AssetFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	GetAssetByID(assetID string) (*models.Asset, error)
	SellAsset(actor *models.User, assetID string, salePrice int64) (*models.Asset, error)
	MarkDeceased(actor *models.User, assetID string) (*models.Asset, error)
}

// PortfolioSummary aggregates an investor's holdings, mirroring the
// active / completed / lost buckets of the marketplace portfolio view.
type PortfolioSummary struct {
	TotalInvested  int64 `json:"total_invested"`
	TotalReturned  int64 `json:"total_returned"` // payouts from sold assets
	TotalLost      int64 `json:"total_lost"`     // amount paid into deceased assets
	ActiveValue    int64 `json:"active_value"`   // amount paid into unresolved assets
	ActiveCount    int   `json:"active_count"`
	CompletedCount int   `json:"completed_count"`
	LostCount      int   `json:"lost_count"`
}

// PayoutPreview is a what-if payout computation. Never stored.
type PayoutPreview struct {
	Shares          float64 `json:"shares"`
	SalePrice       int64   `json:"sale_price"`
	Cost            int64   `json:"cost"`
	OwnershipPct    float64 `json:"ownership_pct"` // share of the whole animal
	EstimatedPayout int64   `json:"estimated_payout"`
}

// InvestmentServicer defines the contract for share purchases and
// portfolio reads.
type InvestmentServicer interface {
	BuyShares(actor *models.User, assetID string, shares float64) (*models.Investment, error)
	GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetAssetInvestments(actor *models.User, assetID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetInvestmentByID(userID, investmentID string) (*models.Investment, error)
	GetPortfolio(userID string) (*PortfolioSummary, error)
	PreviewPayout(assetID string, shares float64, salePrice int64) (*PayoutPreview, error)
}

// FarmerProfile pairs a farmer with their derived reputation stats.
type FarmerProfile struct {
	Farmer models.Farmer      `json:"farmer"`
	Stats  models.FarmerStats `json:"stats"`
}

// FarmerServicer defines the contract for farmer profiles and reviews.
type FarmerServicer interface {
	GetFarmers(page pagination.PageRequest) (*pagination.PageResponse[FarmerProfile], error)
	GetFarmerByID(farmerID string) (*FarmerProfile, error)
	CreateReview(actor *models.User, farmerID, assetID string, rating int, comment string) (*models.FarmerReview, error)
	GetFarmerReviews(farmerID string, page pagination.PageRequest) (*pagination.PageResponse[models.FarmerReview], error)
}

// FavoriteServicer defines the contract for the favorites set.
type FavoriteServicer interface {
	Toggle(actor *models.User, assetID string) (bool, error)
	List(userID string) ([]string, error)
}

// FarmerDraft holds the profile fields supplied when registering a farmer.
type FarmerDraft struct {
	FarmName    string
	Location    string
	Bio         string
	ImageURL    string
	Established int
	Specialties string
}

// UserServicer defines the contract for user records.
type UserServicer interface {
	CreateUser(name, email string, role models.UserRole, farm *FarmerDraft) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
}

// SnapshotServicer defines the contract for whole-ledger snapshots.
type SnapshotServicer interface {
	Export() (*snapshot.Document, error)
	Import(doc *snapshot.Document) error
	Bootstrap(path string) error
}
