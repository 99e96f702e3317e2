package repository

import (
	"oraconsoleapi/config"

	"gorm.io/gorm"
)

// BaseRepository provides transaction management for the local store.
type BaseRepository interface {
	Begin() *gorm.DB
	Transaction(fn func(tx *gorm.DB) error) error
}

type baseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a base repository bound to the global store.
func NewBaseRepository() BaseRepository {
	return NewBaseRepositoryWithDB(config.DB)
}

func NewBaseRepositoryWithDB(db *gorm.DB) BaseRepository {
	return &baseRepository{db: db}
}

func (r *baseRepository) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *baseRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

func pick(tx, fallback *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return fallback
}
