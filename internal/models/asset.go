package models

import "github.com/shopspring/decimal"

// AssetStatus represents the lifecycle stage of an asset.
//
// - open: accepting investments, shares available to buy
// - funded: fully funded, animal being raised, waiting for sale
// - sold: sale complete, payouts distributed
// - deceased: animal died, payouts fixed at zero
type AssetStatus string

const (
	AssetStatusOpen     AssetStatus = "open"
	AssetStatusFunded   AssetStatus = "funded"
	AssetStatusSold     AssetStatus = "sold"
	AssetStatusDeceased AssetStatus = "deceased"
)

// Resolved reports whether the status is terminal. Resolved assets accept
// no further mutation of status, amount raised, or payouts.
func (s AssetStatus) Resolved() bool {
	return s == AssetStatusSold || s == AssetStatusDeceased
}

// Asset represents an animal listed for fractional investment.
// All monetary amounts are in pence.
type Asset struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Type        string `gorm:"not null" json:"type"` // "Cow", "Pig", "Goat", ...
	Breed       string `json:"breed"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`

	PurchasePrice int64 `gorm:"type:bigint;not null" json:"purchase_price"` // farmer's cost basis
	FundingGoal   int64 `gorm:"type:bigint;not null" json:"funding_goal"`   // amount sought from investors
	SharePrice    int64 `gorm:"type:bigint;not null" json:"share_price"`    // price per share
	AmountRaised  int64 `gorm:"type:bigint;not null;default:0" json:"amount_raised"`

	Status    AssetStatus `gorm:"not null;default:open" json:"status"`
	SalePrice *int64      `gorm:"type:bigint" json:"sale_price,omitempty"` // set exactly once, at sale

	FarmerID string `gorm:"type:uuid;not null" json:"farmer_id"`

	// Relationships
	Farmer      Farmer       `gorm:"foreignKey:FarmerID" json:"farmer,omitempty"`
	Investments []Investment `gorm:"foreignKey:AssetID" json:"investments,omitempty"`
}

// The derived financial quantities below are recomputed on every read.
// They are cheap pure functions; caching them would only invite
// invalidation bugs.

// TotalShares is the number of shares spanning the investor-funded
// portion: fundingGoal / sharePrice.
func (a *Asset) TotalShares() float64 {
	if a.SharePrice == 0 {
		return 0
	}
	return decimal.NewFromInt(a.FundingGoal).
		Div(decimal.NewFromInt(a.SharePrice)).InexactFloat64()
}

// SharesSold is amountRaised / sharePrice.
func (a *Asset) SharesSold() float64 {
	if a.SharePrice == 0 {
		return 0
	}
	return decimal.NewFromInt(a.AmountRaised).
		Div(decimal.NewFromInt(a.SharePrice)).InexactFloat64()
}

// SharesRemaining is totalShares minus sharesSold.
func (a *Asset) SharesRemaining() float64 {
	if a.SharePrice == 0 {
		return 0
	}
	return decimal.NewFromInt(a.FundingGoal - a.AmountRaised).
		Div(decimal.NewFromInt(a.SharePrice)).InexactFloat64()
}

// InvestorOwnership is the fraction of the animal's total value
// attributable to investors: fundingGoal / purchasePrice, in [0, 1].
func (a *Asset) InvestorOwnership() float64 {
	if a.PurchasePrice == 0 {
		return 0
	}
	return decimal.NewFromInt(a.FundingGoal).
		Div(decimal.NewFromInt(a.PurchasePrice)).InexactFloat64()
}

// FarmerOwnership is 1 minus the investor ownership fraction.
func (a *Asset) FarmerOwnership() float64 {
	return 1 - a.InvestorOwnership()
}

// FundingProgress is amountRaised / fundingGoal as a percentage.
func (a *Asset) FundingProgress() float64 {
	if a.FundingGoal == 0 {
		return 0
	}
	return decimal.NewFromInt(a.AmountRaised).
		Div(decimal.NewFromInt(a.FundingGoal)).
		Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// CostOf returns the cost in pence of buying the given number of shares at
// the current share price, and whether that cost is a whole number of pence.
func (a *Asset) CostOf(shares float64) (int64, bool) {
	cost := decimal.NewFromFloat(shares).Mul(decimal.NewFromInt(a.SharePrice))
	if !cost.IsInteger() {
		return 0, false
	}
	return cost.IntPart(), true
}

// PayoutFor computes the payout in pence for an investment holding the
// given shares, were the asset to sell at salePrice:
//
//	payout = (shares / totalShares) × salePrice × investorOwnership
//
// totalShares spans only the investor-funded portion, so the ownership
// fraction scales the investor pool's shares down to the investors'
// fractional claim on the full sale proceeds. Computed in decimal and
// rounded to the nearest penny at the stored boundary.
func (a *Asset) PayoutFor(shares float64, salePrice int64) int64 {
	if a.FundingGoal == 0 || a.PurchasePrice == 0 || a.SharePrice == 0 {
		return 0
	}
	totalShares := decimal.NewFromInt(a.FundingGoal).Div(decimal.NewFromInt(a.SharePrice))
	ownership := decimal.NewFromInt(a.FundingGoal).Div(decimal.NewFromInt(a.PurchasePrice))

	return decimal.NewFromFloat(shares).
		Div(totalShares).
		Mul(decimal.NewFromInt(salePrice)).
		Mul(ownership).
		Round(0).IntPart()
}

// AssetMetrics bundles the derived quantities for API responses.
type AssetMetrics struct {
	TotalShares       float64 `json:"total_shares"`
	SharesSold        float64 `json:"shares_sold"`
	SharesRemaining   float64 `json:"shares_remaining"`
	InvestorOwnership float64 `json:"investor_ownership"`
	FarmerOwnership   float64 `json:"farmer_ownership"`
	FundingProgress   float64 `json:"funding_progress_pct"`
	PerSharePayout    *int64  `json:"per_share_payout,omitempty"` // only once sold
}

// Metrics computes the full set of derived values for the asset.
func (a *Asset) Metrics() AssetMetrics {
	m := AssetMetrics{
		TotalShares:       a.TotalShares(),
		SharesSold:        a.SharesSold(),
		SharesRemaining:   a.SharesRemaining(),
		InvestorOwnership: a.InvestorOwnership(),
		FarmerOwnership:   a.FarmerOwnership(),
		FundingProgress:   a.FundingProgress(),
	}
	if a.SalePrice != nil {
		perShare := a.PayoutFor(1, *a.SalePrice)
		m.PerSharePayout = &perShare
	}
	return m
}
