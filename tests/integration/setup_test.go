package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"herdshare/internal/handlers"
	"herdshare/internal/logger"
	"herdshare/internal/middleware"
	"herdshare/internal/models"
	"herdshare/internal/services"
	"herdshare/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Farmer{},
		&models.Asset{},
		&models.Investment{},
		&models.FarmerReview{},
		&models.Favorite{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	assetService := services.NewAssetService(db)
	investmentService := services.NewInvestmentService(db, assetService)
	farmerService := services.NewFarmerService(db)
	favoriteService := services.NewFavoriteService(db)
	snapshotService := services.NewSnapshotService(db)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	assetHandler := handlers.NewAssetHandler(assetService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	farmerHandler := handlers.NewFarmerHandler(farmerService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/users", userHandler.CreateUser)
	v1.GET("/users", userHandler.ListUsers)
	v1.GET("/assets", assetHandler.GetAssets)
	v1.GET("/assets/:id", assetHandler.GetAsset)
	v1.GET("/assets/:id/payout-preview", investmentHandler.PreviewPayout)
	v1.GET("/farmers", farmerHandler.GetFarmers)
	v1.GET("/farmers/:id", farmerHandler.GetFarmer)
	v1.GET("/farmers/:id/reviews", farmerHandler.GetFarmerReviews)

	// Routes requiring a resolvable acting user
	acting := v1.Group("/")
	acting.Use(middleware.Identity(db))

	acting.GET("/users/me", userHandler.GetMe)
	acting.GET("/users/:id", userHandler.GetUser)
	acting.POST("/assets", assetHandler.CreateAsset)
	acting.PATCH("/assets/:id", assetHandler.UpdateAsset)
	acting.POST("/assets/:id/sell", assetHandler.SellAsset)
	acting.POST("/assets/:id/deceased", assetHandler.MarkDeceased)
	acting.GET("/assets/:id/investments", investmentHandler.GetAssetInvestments)
	acting.POST("/investments", investmentHandler.BuyShares)
	acting.GET("/investments", investmentHandler.GetMyInvestments)
	acting.GET("/investments/:id", investmentHandler.GetInvestment)
	acting.GET("/portfolio", investmentHandler.GetPortfolio)
	acting.POST("/farmers/:id/reviews", farmerHandler.CreateReview)
	acting.GET("/favorites", favoriteHandler.List)
	acting.POST("/favorites/:id", favoriteHandler.Toggle)
	acting.GET("/snapshot", snapshotHandler.Export)
	acting.POST("/snapshot", snapshotHandler.Import)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router as the given user.
func (app *testApp) request(method, path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerInvestor registers an investor and returns the user ID.
func (app *testApp) registerInvestor(t *testing.T, name, email string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"role":"investor"}`, name, email)
	rec := app.request("POST", "/api/v1/users", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("investor registration failed: %d %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	return user["id"].(string)
}

// registerFarmer registers a farmer and returns the user ID and farmer profile ID.
func (app *testApp) registerFarmer(t *testing.T, name, email, farmName string) (userID, farmerID string) {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"role":"farmer","farm":{"farm_name":%q,"location":"Yorkshire Dales"}}`,
		name, email, farmName)
	rec := app.request("POST", "/api/v1/users", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("farmer registration failed: %d %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	return user["id"].(string), user["farmer_id"].(string)
}

// createAsset lists an asset as the given farmer and returns the asset ID.
// Uses the worked-example pricing: purchase £500, goal £250, share £10.
func (app *testApp) createAsset(t *testing.T, farmerUserID, name string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"type":"Cow","breed":"Highland","purchase_price":50000,"funding_goal":25000,"share_price":1000}`, name)
	rec := app.request("POST", "/api/v1/assets", body, farmerUserID)
	if rec.Code != http.StatusCreated {
		t.Fatalf("asset creation failed: %d %s", rec.Code, rec.Body.String())
	}
	asset := parseJSON(t, rec)["asset"].(map[string]interface{})
	return asset["id"].(string)
}

// buyShares buys shares as the given investor and returns the investment ID.
func (app *testApp) buyShares(t *testing.T, investorID, assetID string, shares float64) string {
	t.Helper()
	body := fmt.Sprintf(`{"asset_id":%q,"shares":%g}`, assetID, shares)
	rec := app.request("POST", "/api/v1/investments", body, investorID)
	if rec.Code != http.StatusCreated {
		t.Fatalf("share purchase failed: %d %s", rec.Code, rec.Body.String())
	}
	inv := parseJSON(t, rec)["investment"].(map[string]interface{})
	return inv["id"].(string)
}
