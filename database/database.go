package database

import (
	"fmt"

	"museum-app/internal/domain/museum"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the archive database and migrates its tables. With no DSN
// configured it returns (nil, nil): the caller then selects the in-memory
// mock archive instead of treating the absence as fatal.
func Init(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// Required for UUID generation
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return nil, fmt.Errorf("enable pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(
		&museum.ArtworkRecord{},
		&museum.TranslationRow{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
