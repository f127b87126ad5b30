package models

import "time"

// Investment represents a single share-purchase event by an investor.
// Payout fields are populated exactly once, when the referenced asset
// reaches a terminal state; the record is immutable otherwise.
type Investment struct {
	Base
	AssetID string `gorm:"type:uuid;not null;index" json:"asset_id"`
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`

	Shares       float64   `gorm:"not null" json:"shares"`
	AmountPaid   int64     `gorm:"type:bigint;not null" json:"amount_paid"` // shares × sharePrice at purchase
	PurchaseDate time.Time `gorm:"not null" json:"purchase_date"`

	Payout     *int64     `gorm:"type:bigint" json:"payout,omitempty"`
	PayoutDate *time.Time `json:"payout_date,omitempty"`

	// Relationships
	Asset Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

// Resolved reports whether the payout has been fixed.
func (i *Investment) Resolved() bool {
	return i.Payout != nil
}
