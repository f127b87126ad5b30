// Package seed holds the hardcoded dataset used to bootstrap an empty
// database when no snapshot file is available.
package seed

import (
	"time"

	"herdshare/internal/models"
	"herdshare/internal/snapshot"
)

// Fixed UUIDv7 identifiers so repeated bootstraps and the postgres uuid
// columns both get stable, well-formed keys.
var (
	farmerID   = "01909df2-3b6e-7d24-9a41-c52e8f1a7b10"
	investorID = "01909df2-3b6f-7a81-b2d5-0e4c6a8f1d32"
	ownerID    = "01909df2-3b70-7c15-8f6a-2b9d4e7c0a54"

	bellaID   = "01909df2-3b71-7e42-a1c8-5d3f6b9e2c76"
	winstonID = "01909df2-3b72-7b93-9e0a-7f1c4d8b3e98"
	cloverID  = "01909df2-3b73-7d60-b4f2-9a5e1c7d4f0b"
)

// Document returns the seed dataset as a ledger snapshot document.
func Document() *snapshot.Document {
	doc := &snapshot.Document{
		Version:    snapshot.CurrentVersion,
		ExportedAt: time.Now().UTC(),
		Farmers: []models.Farmer{
			{
				Base:        models.Base{ID: farmerID},
				Name:        "Regina Czech",
				FarmName:    "Green Valley Ranch",
				Location:    "Yorkshire Dales",
				Bio:         "Organic beef farmer committed to regenerative farming. We believe in working with nature, not against it. All our cattle are grass-fed and raised without antibiotics.",
				Established: 2015,
				Specialties: "Beef,Organic,Grass-fed",
			},
		},
		Users: []models.User{
			{
				Base:  models.Base{ID: investorID},
				Name:  "Demo Investor",
				Email: "investor@herdshare.dev",
				Role:  models.UserRoleInvestor,
			},
			{
				Base:     models.Base{ID: ownerID},
				Name:     "Regina Czech",
				Email:    "regina@greenvalleyranch.dev",
				Role:     models.UserRoleFarmer,
				FarmerID: &farmerID,
			},
		},
		Assets: []models.Asset{
			{
				Base:          models.Base{ID: bellaID},
				Name:          "Bella",
				Type:          "Cow",
				Breed:         "Highland",
				Description:   "A hardy Highland cow raised on open pasture. Expected sale in 18 months.",
				PurchasePrice: 50000, // £500
				FundingGoal:   25000, // £250
				SharePrice:    1000,  // £10
				Status:        models.AssetStatusOpen,
				FarmerID:      farmerID,
			},
			{
				Base:          models.Base{ID: winstonID},
				Name:          "Winston",
				Type:          "Pig",
				Breed:         "Gloucestershire Old Spot",
				Description:   "Rare-breed pig with excellent provenance, part of our heritage programme.",
				PurchasePrice: 30000,
				FundingGoal:   18000,
				SharePrice:    500,
				Status:        models.AssetStatusOpen,
				FarmerID:      farmerID,
			},
			{
				Base:          models.Base{ID: cloverID},
				Name:          "Clover",
				Type:          "Goat",
				Breed:         "Boer",
				Description:   "Young Boer goat from a strong bloodline.",
				PurchasePrice: 12000,
				FundingGoal:   9000,
				SharePrice:    300,
				Status:        models.AssetStatusOpen,
				FarmerID:      farmerID,
			},
		},
	}
	doc.FillDefaults()
	return doc
}
