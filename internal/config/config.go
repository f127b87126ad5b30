package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver   string // "sqlite" or "postgres"
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Ledger snapshot used to bootstrap an empty database
	SnapshotPath string
}

var appConfig *Config

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	loadDotenv()

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "herdshare.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "herdshare"),
		DBPassword: getEnv("DB_PASSWORD", "herdshare"),
		DBName:     getEnv("DB_NAME", "herdshare"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SnapshotPath: getEnv("SNAPSHOT_PATH", "livestock_data.json"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration, loading it on first use.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// loadDotenv loads a .env file when present. Missing files are fine;
// plain environment variables are used instead.
func loadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
