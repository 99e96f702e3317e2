package repository

import (
	"oraconsoleapi/config"
	"oraconsoleapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository stores per-connection, per-screen UI state.
type PreferenceRepository interface {
	Get(tx *gorm.DB, connectionID uint, screenID string) (*models.UserPreference, error)
	Upsert(tx *gorm.DB, pref *models.UserPreference) error
	DeleteByConnection(tx *gorm.DB, connectionID uint) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository() PreferenceRepository {
	return NewPreferenceRepositoryWithDB(config.DB)
}

func NewPreferenceRepositoryWithDB(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(tx *gorm.DB, connectionID uint, screenID string) (*models.UserPreference, error) {
	db := pick(tx, r.db)
	var pref models.UserPreference
	if err := db.Where("connection_id = ? AND screen_id = ?", connectionID, screenID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Upsert(tx *gorm.DB, pref *models.UserPreference) error {
	return pick(tx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "connection_id"}, {Name: "screen_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(pref).Error
}

func (r *preferenceRepository) DeleteByConnection(tx *gorm.DB, connectionID uint) error {
	return pick(tx, r.db).Where("connection_id = ?", connectionID).Delete(&models.UserPreference{}).Error
}
