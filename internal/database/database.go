package database

import (
	"fmt"
	"time"

	"herdshare/internal/config"
	"herdshare/internal/logger"
	"herdshare/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database connections and schema management.
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewConfig builds database configuration from the application config.
func NewConfig(app *config.Config) *Config {
	return &Config{
		Driver:     app.DBDriver,
		SQLitePath: app.SQLitePath,
		Host:       app.DBHost,
		Port:       app.DBPort,
		User:       app.DBUser,
		Password:   app.DBPassword,
		DBName:     app.DBName,
		SSLMode:    app.DBSSLMode,
	}
}

// NewManager opens a database connection for the configured driver.
func NewManager(cfg *Config) (*Manager, error) {
	var db *gorm.DB
	var err error

	switch cfg.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // Required for pooled proxies; harmless on direct connections
		}), &gorm.Config{})
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, config: cfg}, nil
}

// Migrate brings the schema up to date. Postgres uses the SQL migrations
// under migrations/; sqlite auto-migrates from the GORM models, since
// golang-migrate's sqlite driver would drag in a second sqlite binding.
func (m *Manager) Migrate() error {
	if m.config.Driver == "postgres" {
		return m.runSQLMigrations()
	}
	return m.db.AutoMigrate(
		&models.User{},
		&models.Farmer{},
		&models.Asset{},
		&models.Investment{},
		&models.FarmerReview{},
		&models.Favorite{},
	)
}

func (m *Manager) runSQLMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.config.URL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance.
func (m *Manager) DB() *gorm.DB {
	return m.db
}
