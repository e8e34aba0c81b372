package database

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const connectAttempts = 5

// ConnectPostgres opens the legacy order store and migrates the given models.
//
// Supported env vars:
//   - POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_DB (required)
//   - POSTGRES_HOST (default: localhost)
//   - POSTGRES_PORT (default: 5432)
//   - POSTGRES_SSLMODE (default: disable)
//   - POSTGRES_TIMEZONE (default: UTC)
func ConnectPostgres(log *zap.Logger, autoMigrateModels ...any) (*gorm.DB, error) {
	dsn, err := PostgresDSNFromEnv()
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	for i := 0; i < connectAttempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, poolErr := db.DB()
			if poolErr == nil {
				sqlDB.SetMaxOpenConns(25)
				sqlDB.SetMaxIdleConns(5)
				sqlDB.SetConnMaxLifetime(5 * time.Minute)
			}
			log.Info("connected to postgres")

			if len(autoMigrateModels) > 0 {
				if err := db.AutoMigrate(autoMigrateModels...); err != nil {
					return nil, fmt.Errorf("AutoMigrate failed: %w", err)
				}
			}
			return db, nil
		}

		log.Warn("postgres connection failed, retrying", zap.Int("attempt", i+1), zap.Error(err))
		time.Sleep(time.Duration(i+1) * 2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to postgres after retries: %w", err)
}

func PostgresDSNFromEnv() (string, error) {
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	name := os.Getenv("POSTGRES_DB")
	if user == "" {
		return "", fmt.Errorf("POSTGRES_USER not set")
	}
	if password == "" {
		return "", fmt.Errorf("POSTGRES_PASSWORD not set")
	}
	if name == "" {
		return "", fmt.Errorf("POSTGRES_DB not set")
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		getenvDefault("POSTGRES_HOST", "localhost"),
		user, password, name,
		getenvDefault("POSTGRES_PORT", "5432"),
		getenvDefault("POSTGRES_SSLMODE", "disable"),
		getenvDefault("POSTGRES_TIMEZONE", "UTC"),
	), nil
}
