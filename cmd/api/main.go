package main

import (
	"fmt"
	"herdshare/internal/config"
	"herdshare/internal/database"
	"herdshare/internal/handlers"
	"herdshare/internal/logger"
	"herdshare/internal/middleware"
	"herdshare/internal/services"
	"herdshare/internal/validator"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "herdshare/internal/docs" // Import swagger docs
)

// @title           HerdShare API
// @version         1.0
// @description     HerdShare is a fractional livestock investment marketplace: farmers list animal assets, investors buy shares, and sale or loss outcomes distribute payouts.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ActingUser
// @in header
// @name X-User-ID
// @description ID of the acting user. Identification only; there is no authentication.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	assetService := services.NewAssetService(db)
	investmentService := services.NewInvestmentService(db, assetService)
	farmerService := services.NewFarmerService(db)
	favoriteService := services.NewFavoriteService(db)
	snapshotService := services.NewSnapshotService(db)

	// Seed an empty database from the snapshot file or the built-in dataset
	if err := snapshotService.Bootstrap(appConfig.SnapshotPath); err != nil {
		return fmt.Errorf("failed to bootstrap ledger: %w", err)
	}

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	assetHandler := handlers.NewAssetHandler(assetService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	farmerHandler := handlers.NewFarmerHandler(farmerService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes: registration, browsing, previews
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

	// Asset lifecycle
	acting.POST("/assets", assetHandler.CreateAsset)
	acting.PATCH("/assets/:id", assetHandler.UpdateAsset)
	acting.POST("/assets/:id/sell", assetHandler.SellAsset)
	acting.POST("/assets/:id/deceased", assetHandler.MarkDeceased)
	acting.GET("/assets/:id/investments", investmentHandler.GetAssetInvestments)

	// Investments and portfolio
	acting.POST("/investments", investmentHandler.BuyShares)
	acting.GET("/investments", investmentHandler.GetMyInvestments)
	acting.GET("/investments/:id", investmentHandler.GetInvestment)
	acting.GET("/portfolio", investmentHandler.GetPortfolio)

	// Reviews and favorites
	acting.POST("/farmers/:id/reviews", farmerHandler.CreateReview)
	acting.GET("/favorites", favoriteHandler.List)
	acting.POST("/favorites/:id", favoriteHandler.Toggle)

	// Ledger snapshot
	acting.GET("/snapshot", snapshotHandler.Export)
	acting.POST("/snapshot", snapshotHandler.Import)

	log.Infof("Starting HerdShare backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
