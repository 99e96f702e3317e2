package bootstrap

import (
	"errors"
	"fmt"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/repository"

	"gorm.io/gorm"
)

// Migrate creates or updates the local store tables.
func Migrate(db *gorm.DB) error {
	logger.Infof("Migrating local store schema...")
	if err := db.AutoMigrate(
		&models.DatabaseConnection{},
		&models.UserPreference{},
		&models.WorkloadSnapshot{},
	); err != nil {
		logger.Errorf("Failed to migrate local store: %v", err)
		return fmt.Errorf("failed to migrate local store: %w", err)
	}
	return nil
}

// LoadData migrates the store and returns the profile that was active when
// the server last stopped, or nil when there is none.
func LoadData(db *gorm.DB) (*models.DatabaseConnection, error) {
	logger.Infof("Starting bootstrap data loading...")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	repo := repository.NewConnectionRepositoryWithDB(db)
	conns, err := repo.List(nil)
	if err != nil {
		logger.Errorf("Failed to load connections: %v", err)
		return nil, fmt.Errorf("failed to load connections: %w", err)
	}
	logger.Infof("Loaded %d connection profiles", len(conns))

	active, err := repo.GetActive(nil)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Infof("No active connection stored")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active connection: %w", err)
	}
	logger.Infof("Active connection restored: id=%d name=%s", active.ID, active.Name)
	return active, nil
}
