package repository

import (
	"time"

	"oraconsoleapi/config"
	"oraconsoleapi/models"

	"gorm.io/gorm"
)

// SnapshotRepository persists time machine samples.
type SnapshotRepository interface {
	Create(tx *gorm.DB, snap *models.WorkloadSnapshot) error
	// Range returns samples in [from, to] ordered by capture time, without the JSON payloads.
	Range(tx *gorm.DB, connectionID uint, from, to time.Time) ([]models.WorkloadSnapshot, error)
	// AtOrBefore returns the latest sample captured at or before t.
	AtOrBefore(tx *gorm.DB, connectionID uint, t time.Time) (*models.WorkloadSnapshot, error)
	DeleteOlderThan(tx *gorm.DB, cutoff time.Time) (int64, error)
	DeleteByConnection(tx *gorm.DB, connectionID uint) error
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository() SnapshotRepository {
	return NewSnapshotRepositoryWithDB(config.DB)
}

func NewSnapshotRepositoryWithDB(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(tx *gorm.DB, snap *models.WorkloadSnapshot) error {
	return pick(tx, r.db).Create(snap).Error
}

func (r *snapshotRepository) Range(tx *gorm.DB, connectionID uint, from, to time.Time) ([]models.WorkloadSnapshot, error) {
	db := pick(tx, r.db)
	var snaps []models.WorkloadSnapshot
	if err := db.Select("id", "connection_id", "captured_at", "session_count", "active_sessions").
		Where("connection_id = ? AND captured_at BETWEEN ? AND ?", connectionID, from, to).
		Order("captured_at").
		Find(&snaps).Error; err != nil {
		return nil, err
	}
	return snaps, nil
}

func (r *snapshotRepository) AtOrBefore(tx *gorm.DB, connectionID uint, t time.Time) (*models.WorkloadSnapshot, error) {
	db := pick(tx, r.db)
	var snap models.WorkloadSnapshot
	if err := db.Where("connection_id = ? AND captured_at <= ?", connectionID, t).
		Order("captured_at DESC").
		First(&snap).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *snapshotRepository) DeleteOlderThan(tx *gorm.DB, cutoff time.Time) (int64, error) {
	res := pick(tx, r.db).Where("captured_at < ?", cutoff).Delete(&models.WorkloadSnapshot{})
	return res.RowsAffected, res.Error
}

func (r *snapshotRepository) DeleteByConnection(tx *gorm.DB, connectionID uint) error {
	return pick(tx, r.db).Where("connection_id = ?", connectionID).Delete(&models.WorkloadSnapshot{}).Error
}
