package repository

import (
	"time"

	"oraconsoleapi/config"
	"oraconsoleapi/models"

	"gorm.io/gorm"
)

// ConnectionRepository provides data access for saved connection profiles.
type ConnectionRepository interface {
	List(tx *gorm.DB) ([]models.DatabaseConnection, error)
	GetByID(tx *gorm.DB, id uint) (*models.DatabaseConnection, error)
	GetActive(tx *gorm.DB) (*models.DatabaseConnection, error)
	Create(tx *gorm.DB, conn *models.DatabaseConnection) error
	Update(tx *gorm.DB, conn *models.DatabaseConnection) error
	DeleteByID(tx *gorm.DB, id uint) error
	// Activate marks id as the only active profile and stores its discovery data.
	Activate(tx *gorm.DB, conn *models.DatabaseConnection) error
	Deactivate(tx *gorm.DB, id uint) error
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a connection repository bound to the global store.
func NewConnectionRepository() ConnectionRepository {
	return NewConnectionRepositoryWithDB(config.DB)
}

func NewConnectionRepositoryWithDB(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) List(tx *gorm.DB) ([]models.DatabaseConnection, error) {
	db := pick(tx, r.db)
	var conns []models.DatabaseConnection
	if err := db.Order("id").Find(&conns).Error; err != nil {
		return nil, err
	}
	return conns, nil
}

func (r *connectionRepository) GetByID(tx *gorm.DB, id uint) (*models.DatabaseConnection, error) {
	db := pick(tx, r.db)
	var conn models.DatabaseConnection
	if err := db.Where("id = ?", id).First(&conn).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *connectionRepository) GetActive(tx *gorm.DB) (*models.DatabaseConnection, error) {
	db := pick(tx, r.db)
	var conn models.DatabaseConnection
	if err := db.Where("is_active = ?", true).First(&conn).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *connectionRepository) Create(tx *gorm.DB, conn *models.DatabaseConnection) error {
	return pick(tx, r.db).Create(conn).Error
}

func (r *connectionRepository) Update(tx *gorm.DB, conn *models.DatabaseConnection) error {
	return pick(tx, r.db).Save(conn).Error
}

func (r *connectionRepository) DeleteByID(tx *gorm.DB, id uint) error {
	res := pick(tx, r.db).Delete(&models.DatabaseConnection{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *connectionRepository) Activate(tx *gorm.DB, conn *models.DatabaseConnection) error {
	run := func(db *gorm.DB) error {
		if err := db.Model(&models.DatabaseConnection{}).
			Where("id <> ? AND is_active = ?", conn.ID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		now := time.Now()
		conn.IsActive = true
		conn.LastConnected = &now
		return db.Save(conn).Error
	}
	if tx != nil {
		return run(tx)
	}
	return r.db.Transaction(run)
}

func (r *connectionRepository) Deactivate(tx *gorm.DB, id uint) error {
	return pick(tx, r.db).Model(&models.DatabaseConnection{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
