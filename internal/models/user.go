package models

// UserRole distinguishes investors from farmers.
type UserRole string

const (
	UserRoleInvestor UserRole = "investor"
	UserRoleFarmer   UserRole = "farmer"
)

// User represents a marketplace participant. There are no credentials:
// identity is declared per request, not authenticated.
type User struct {
	Base
	Name  string   `gorm:"not null" json:"name"`
	Email string   `gorm:"uniqueIndex;not null" json:"email"`
	Role  UserRole `gorm:"not null;default:investor" json:"role"`

	// Set for users with the farmer role; links to their profile.
	FarmerID *string `gorm:"type:uuid" json:"farmer_id,omitempty"`

	// Relationships
	Investments []Investment `gorm:"foreignKey:UserID" json:"investments,omitempty"`
}
