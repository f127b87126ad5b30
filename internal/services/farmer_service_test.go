package services

import (
	"testing"

	"herdshare/internal/models"
	"herdshare/internal/pagination"
	"herdshare/internal/testutil"
)

func TestGetFarmerByID(t *testing.T) {
	t.Run("stats_from_assets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFarmerService(db)
		assetSvc := NewAssetService(db)
		invSvc := NewInvestmentService(db, assetSvc)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		investor := testutil.CreateTestInvestor(t, db)

		soldA := testutil.CreateTestAsset(t, db, profile.ID)
		soldB := testutil.CreateTestAsset(t, db, profile.ID)
		lost := testutil.CreateTestAsset(t, db, profile.ID)
		testutil.CreateTestAsset(t, db, profile.ID) // still open

		_, err := invSvc.BuyShares(investor, soldA.ID, 5) // £50 raised
		testutil.AssertNoError(t, err)

		_, err = assetSvc.SellAsset(farmer, soldA.ID, 100000)
		testutil.AssertNoError(t, err)
		_, err = assetSvc.SellAsset(farmer, soldB.ID, 80000)
		testutil.AssertNoError(t, err)
		_, err = assetSvc.MarkDeceased(farmer, lost.ID)
		testutil.AssertNoError(t, err)

		got, err := svc.GetFarmerByID(profile.ID)
		testutil.AssertNoError(t, err)

		if got.Stats.TotalAssets != 4 {
			t.Errorf("expected 4 assets, got %d", got.Stats.TotalAssets)
		}
		if got.Stats.TotalSold != 2 {
			t.Errorf("expected 2 sold, got %d", got.Stats.TotalSold)
		}
		// 2 sold of 3 resolved
		if want := 2.0 / 3.0 * 100; got.Stats.SuccessRate < want-0.01 || got.Stats.SuccessRate > want+0.01 {
			t.Errorf("expected success rate %.2f, got %.2f", want, got.Stats.SuccessRate)
		}
		if got.Stats.TotalRaised != 5000 {
			t.Errorf("expected total raised 5000, got %d", got.Stats.TotalRaised)
		}
		if got.Stats.Rating != 0 || got.Stats.ReviewCount != 0 {
			t.Errorf("unreviewed farmer should have zero rating, got %+v", got.Stats)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFarmerService(db)

		_, err := svc.GetFarmerByID("missing")
		testutil.AssertAppError(t, err, "FARMER_NOT_FOUND")
	})
}

func TestCreateReview(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFarmerService(db)
		assetSvc := NewAssetService(db)
		invSvc := NewInvestmentService(db, assetSvc)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)
		investor := testutil.CreateTestInvestor(t, db)

		_, err := invSvc.BuyShares(investor, asset.ID, 5)
		testutil.AssertNoError(t, err)
		_, err = assetSvc.SellAsset(farmer, asset.ID, 100000)
		testutil.AssertNoError(t, err)

		review, err := svc.CreateReview(investor, profile.ID, asset.ID, 5, "Great farmer")
		testutil.AssertNoError(t, err)
		if review.InvestorName != investor.Name {
			t.Errorf("expected denormalized investor name, got %q", review.InvestorName)
		}

		got, err := svc.GetFarmerByID(profile.ID)
		testutil.AssertNoError(t, err)
		if got.Stats.Rating != 5 || got.Stats.ReviewCount != 1 {
			t.Errorf("expected rating 5 from 1 review, got %+v", got.Stats)
		}
	})

	t.Run("rating_is_mean_of_reviews", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFarmerService(db)
		assetSvc := NewAssetService(db)
		invSvc := NewInvestmentService(db, assetSvc)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		ratings := []int{5, 4, 3}
		investors := make([]*models.User, 0, len(ratings))
		for range ratings {
			investor := testutil.CreateTestInvestor(t, db)
			_, err := invSvc.BuyShares(investor, asset.ID, 1)
			testutil.AssertNoError(t, err)
			investors = append(investors, investor)
		}
		_, err := assetSvc.SellAsset(farmer, asset.ID, 100000)
		testutil.AssertNoError(t, err)
		for i, rating := range ratings {
			_, err := svc.CreateReview(investors[i], profile.ID, asset.ID, rating, "")
			testutil.AssertNoError(t, err)
		}

		got, err := svc.GetFarmerByID(profile.ID)
		testutil.AssertNoError(t, err)
		if got.Stats.Rating != 4 || got.Stats.ReviewCount != 3 {
			t.Errorf("expected mean rating 4 from 3 reviews, got %+v", got.Stats)
		}
	})

	t.Run("duplicate_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFarmerService(db)
		assetSvc := NewAssetService(db)
		invSvc := NewInvestmentService(db, assetSvc)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)
		investor := testutil.CreateTestInvestor(t, db)

		_, err := invSvc.BuyShares(investor, asset.ID, 5)
		testutil.AssertNoError(t, err)
		_, err = assetSvc.SellAsset(farmer, asset.ID, 100000)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateReview(investor, profile.ID, asset.ID, 5, "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateReview(investor, profile.ID, asset.ID, 1, "")
		testutil.AssertAppError(t, err, "DUPLICATE_REVIEW")
	})

	t.Run("unresolved_asset_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFarmerService(db)
		assetSvc := NewAssetService(db)
		invSvc := NewInvestmentService(db, assetSvc)
		_, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)
		investor := testutil.CreateTestInvestor(t, db)

		_, err := invSvc.BuyShares(investor, asset.ID, 5)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateReview(investor, profile.ID, asset.ID, 5, "")
		testutil.AssertAppError(t, err, "REVIEW_NOT_ALLOWED")
	})

	t.Run("non_investor_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFarmerService(db)
		assetSvc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)

		_, err := assetSvc.SellAsset(farmer, asset.ID, 100000)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateReview(farmer, profile.ID, asset.ID, 5, "")
		testutil.AssertAppError(t, err, "REVIEW_NOT_ALLOWED")
	})

	t.Run("no_holding_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFarmerService(db)
		assetSvc := NewAssetService(db)
		farmer, profile := testutil.CreateTestFarmer(t, db)
		asset := testutil.CreateTestAsset(t, db, profile.ID)
		bystander := testutil.CreateTestInvestor(t, db)

		_, err := assetSvc.SellAsset(farmer, asset.ID, 100000)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateReview(bystander, profile.ID, asset.ID, 5, "")
		testutil.AssertAppError(t, err, "REVIEW_NOT_ALLOWED")
	})

	t.Run("rating_out_of_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFarmerService(db)
		_, profile := testutil.CreateTestFarmer(t, db)
		investor := testutil.CreateTestInvestor(t, db)

		_, err := svc.CreateReview(investor, profile.ID, "any", 6, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetFarmerReviews(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewFarmerService(db)
	assetSvc := NewAssetService(db)
	invSvc := NewInvestmentService(db, assetSvc)
	farmer, profile := testutil.CreateTestFarmer(t, db)
	asset := testutil.CreateTestAsset(t, db, profile.ID)

	investors := make([]*models.User, 0, 2)
	for i := 0; i < 2; i++ {
		investor := testutil.CreateTestInvestor(t, db)
		_, err := invSvc.BuyShares(investor, asset.ID, 1)
		testutil.AssertNoError(t, err)
		investors = append(investors, investor)
	}
	_, err := assetSvc.SellAsset(farmer, asset.ID, 100000)
	testutil.AssertNoError(t, err)

	for _, investor := range investors {
		_, err := svc.CreateReview(investor, profile.ID, asset.ID, 4, "solid")
		testutil.AssertNoError(t, err)
	}

	result, err := svc.GetFarmerReviews(profile.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if result.TotalItems != 2 {
		t.Errorf("expected 2 reviews, got %d", result.TotalItems)
	}

	_, err = svc.GetFarmerReviews("missing", pagination.PageRequest{})
	testutil.AssertAppError(t, err, "FARMER_NOT_FOUND")
}
