package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"herdshare/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestInvestor creates a user with the investor role and a unique email.
func CreateTestInvestor(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		Name:  fmt.Sprintf("Investor %d", nextID()),
		Email: fmt.Sprintf("investor%d@test.com", nextID()),
		Role:  models.UserRoleInvestor,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test investor: %v", err)
	}
	return user
}

// CreateTestFarmer creates a farmer profile plus a user holding the farmer role.
func CreateTestFarmer(t *testing.T, db *gorm.DB) (*models.User, *models.Farmer) {
	t.Helper()

	farmer := &models.Farmer{
		Name:     fmt.Sprintf("Farmer %d", nextID()),
		FarmName: fmt.Sprintf("Test Farm %d", nextID()),
		Location: "Yorkshire Dales",
	}
	if err := db.Create(farmer).Error; err != nil {
		t.Fatalf("failed to create test farmer profile: %v", err)
	}

	user := &models.User{
		Name:     farmer.Name,
		Email:    fmt.Sprintf("farmer%d@test.com", nextID()),
		Role:     models.UserRoleFarmer,
		FarmerID: &farmer.ID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test farmer user: %v", err)
	}
	return user, farmer
}

// CreateTestAsset creates an open asset for the given farmer using the
// worked-example pricing: purchase £500, goal £250, share £10.
func CreateTestAsset(t *testing.T, db *gorm.DB, farmerID string) *models.Asset {
	t.Helper()
	return CreateTestAssetWithPricing(t, db, farmerID, 50000, 25000, 1000)
}

// CreateTestAssetWithPricing creates an open asset with explicit pricing (pence).
func CreateTestAssetWithPricing(t *testing.T, db *gorm.DB, farmerID string, purchasePrice, fundingGoal, sharePrice int64) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Name:          fmt.Sprintf("Animal %d", nextID()),
		Type:          "Cow",
		Breed:         "Highland",
		PurchasePrice: purchasePrice,
		FundingGoal:   fundingGoal,
		SharePrice:    sharePrice,
		Status:        models.AssetStatusOpen,
		FarmerID:      farmerID,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}
