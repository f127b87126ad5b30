package services

import (
	"testing"

	"herdshare/internal/models"
	"herdshare/internal/pagination"
	"herdshare/internal/testutil"
)

func TestListAsset(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)

		asset, err := svc.ListAsset(farmer, AssetDraft{
			Name:          "Bella",
			Type:          "Cow",
			Breed:         "Highland",
			PurchasePrice: 50000,
			FundingGoal:   25000,
			SharePrice:    1000,
		})
		testutil.AssertNoError(t, err)

		if asset.ID == "" {
			t.Fatal("expected a generated asset ID")
		}
		if asset.Status != models.AssetStatusOpen {
			t.Errorf("expected status open, got %s", asset.Status)
		}
		if asset.AmountRaised != 0 {
			t.Errorf("expected amount raised 0, got %d", asset.AmountRaised)
		}
		if asset.FarmerID != profile.ID {
			t.Errorf("expected farmer %s, got %s", profile.ID, asset.FarmerID)
		}
	})

	t.Run("goal_exceeds_purchase_price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, _ := testutil.CreateTestFarmer(t, db)

		_, err := svc.ListAsset(farmer, AssetDraft{
			Name: "Bella", Type: "Cow",
			PurchasePrice: 25000, FundingGoal: 50000, SharePrice: 1000,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_pricing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, _ := testutil.CreateTestFarmer(t, db)

		_, err := svc.ListAsset(farmer, AssetDraft{
			Name: "Bella", Type: "Cow",
			PurchasePrice: 50000, FundingGoal: 25000, SharePrice: 0,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("investor_cannot_list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		investor := testutil.CreateTestInvestor(t, db)

		_, err := svc.ListAsset(investor, AssetDraft{
			Name: "Bella", Type: "Cow",
			PurchasePrice: 50000, FundingGoal: 25000, SharePrice: 1000,
		})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestUpdateAsset(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	int64Ptr := func(n int64) *int64 { return &n }

	t.Run("cosmetic_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		updated, err := svc.UpdateAsset(farmer, asset.ID, AssetUpdate{
			Name:        strPtr("Daisy"),
			Description: strPtr("Renamed"),
		})
		testutil.AssertNoError(t, err)
		if updated.Name != "Daisy" || updated.Description != "Renamed" {
			t.Errorf("cosmetic edit not applied: %+v", updated)
		}
	})

	t.Run("pricing_editable_before_funding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		updated, err := svc.UpdateAsset(farmer, asset.ID, AssetUpdate{
			FundingGoal: int64Ptr(20000),
		})
		testutil.AssertNoError(t, err)
		if updated.FundingGoal != 20000 {
			t.Errorf("expected funding goal 20000, got %d", updated.FundingGoal)
		}
	})

	t.Run("pricing_locked_after_funding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)
		investor := testutil.CreateTestInvestor(t, db)

		invSvc := NewInvestmentService(db, svc)
		_, err := invSvc.BuyShares(investor, asset.ID, 5)
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateAsset(farmer, asset.ID, AssetUpdate{SharePrice: int64Ptr(2000)})
		testutil.AssertAppError(t, err, "PRICING_LOCKED")

		// Cosmetic edits still allowed with investor money in
		_, err = svc.UpdateAsset(farmer, asset.ID, AssetUpdate{Name: strPtr("Daisy")})
		testutil.AssertNoError(t, err)
	})

	t.Run("pricing_invariants_still_hold", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		// Raising the goal above the purchase price is rejected
		_, err := svc.UpdateAsset(farmer, asset.ID, AssetUpdate{FundingGoal: int64Ptr(60000)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("resolved_asset_rejects_edits", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		_, err := svc.SellAsset(farmer, asset.ID, 100000)
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateAsset(farmer, asset.ID, AssetUpdate{Name: strPtr("Daisy")})
		testutil.AssertAppError(t, err, "ASSET_RESOLVED")
	})

	t.Run("wrong_farmer", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		_, profile := testutil.CreateTestFarmer(t, db)
		other, _ := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		_, err := svc.UpdateAsset(other, asset.ID, AssetUpdate{Name: strPtr("Daisy")})
		testutil.AssertAppError(t, err, "NOT_ASSET_OWNER")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, _ := testutil.CreateTestFarmer(t, db)

		_, err := svc.UpdateAsset(farmer, "missing", AssetUpdate{Name: strPtr("Daisy")})
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestGetAssets(t *testing.T) {
	t.Run("filter_by_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		testutil.CreateTestAsset(t, db, profile.ID)
		sold := testutil.CreateTestAsset(t, db, profile.ID)

		_, err := svc.SellAsset(farmer, sold.ID, 100000)
		testutil.AssertNoError(t, err)

		status := models.AssetStatusOpen
		result, err := svc.GetAssets(AssetFilter{Status: &status}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected 1 open asset, got %d", result.TotalItems)
		}
	})

	t.Run("filter_by_farmer", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		_, profileA := testutil.CreateTestFarmer(t, db)
		_, profileB := testutil.CreateTestFarmer(t, db)
		testutil.CreateTestAsset(t, db, profileA.ID)
		testutil.CreateTestAsset(t, db, profileB.ID)
		testutil.CreateTestAsset(t, db, profileB.ID)

		result, err := svc.GetAssets(AssetFilter{FarmerID: &profileB.ID}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 assets for farmer B, got %d", result.TotalItems)
		}
	})
}

func TestSellAsset(t *testing.T) {
	t.Run("distributes_payouts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		invSvc := NewInvestmentService(db, svc)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID) // £500/£250/£10
		investor := testutil.CreateTestInvestor(t, db)

		inv, err := invSvc.BuyShares(investor, asset.ID, 5)
		testutil.AssertNoError(t, err)

		sold, err := svc.SellAsset(farmer, asset.ID, 100000) // £1000
		testutil.AssertNoError(t, err)

		if sold.Status != models.AssetStatusSold {
			t.Errorf("expected status sold, got %s", sold.Status)
		}
		if sold.SalePrice == nil || *sold.SalePrice != 100000 {
			t.Error("expected sale price to be recorded")
		}

		// (5/25) * 100000 * 0.5 = 10000
		var resolved models.Investment
		db.First(&resolved, "id = ?", inv.ID)
		if resolved.Payout == nil || *resolved.Payout != 10000 {
			t.Fatalf("expected payout 10000, got %+v", resolved.Payout)
		}
		if resolved.PayoutDate == nil {
			t.Error("expected payout date to be set")
		}
	})

	t.Run("payouts_sum_to_investor_entitlement", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		invSvc := NewInvestmentService(db, svc)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		// Three investors buy out the whole pool: 10 + 8 + 7 = 25 shares
		for _, shares := range []float64{10, 8, 7} {
			investor := testutil.CreateTestInvestor(t, db)
			_, err := invSvc.BuyShares(investor, asset.ID, shares)
			testutil.AssertNoError(t, err)
		}

		_, err := svc.SellAsset(farmer, asset.ID, 100000)
		testutil.AssertNoError(t, err)

		var investments []models.Investment
		db.Where("asset_id = ?", asset.ID).Find(&investments)
		var sum int64
		for i := range investments {
			sum += *investments[i].Payout
		}
		// Full pool at £1000 with ownership 0.5 entitles investors to £500
		if sum != 50000 {
			t.Errorf("expected payouts to sum to 50000, got %d", sum)
		}
	})

	t.Run("invalid_price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		_, err := svc.SellAsset(farmer, asset.ID, 0)
		testutil.AssertAppError(t, err, "INVALID_SALE_PRICE")
	})

	t.Run("already_resolved", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		_, err := svc.SellAsset(farmer, asset.ID, 100000)
		testutil.AssertNoError(t, err)

		// Re-selling must not silently recompute payouts
		_, err = svc.SellAsset(farmer, asset.ID, 200000)
		testutil.AssertAppError(t, err, "ASSET_RESOLVED")
	})

	t.Run("funded_asset_sellable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		invSvc := NewInvestmentService(db, svc)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)
		investor := testutil.CreateTestInvestor(t, db)

		_, err := invSvc.BuyShares(investor, asset.ID, 25) // fully fund
		testutil.AssertNoError(t, err)

		sold, err := svc.SellAsset(farmer, asset.ID, 100000)
		testutil.AssertNoError(t, err)
		if sold.Status != models.AssetStatusSold {
			t.Errorf("expected funded asset to sell, got %s", sold.Status)
		}
	})
}

func TestMarkDeceased(t *testing.T) {
	t.Run("zeroes_payouts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		invSvc := NewInvestmentService(db, svc)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)
		investor := testutil.CreateTestInvestor(t, db)

		inv, err := invSvc.BuyShares(investor, asset.ID, 5)
		testutil.AssertNoError(t, err)

		deceased, err := svc.MarkDeceased(farmer, asset.ID)
		testutil.AssertNoError(t, err)
		if deceased.Status != models.AssetStatusDeceased {
			t.Errorf("expected status deceased, got %s", deceased.Status)
		}

		var resolved models.Investment
		db.First(&resolved, "id = ?", inv.ID)
		if resolved.Payout == nil || *resolved.Payout != 0 {
			t.Fatalf("expected payout 0 regardless of amount paid, got %+v", resolved.Payout)
		}
		if resolved.PayoutDate == nil {
			t.Error("expected payout date to be set")
		}
	})

	t.Run("already_resolved", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		_, err := svc.MarkDeceased(farmer, asset.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.MarkDeceased(farmer, asset.ID)
		testutil.AssertAppError(t, err, "ASSET_RESOLVED")
	})
}
