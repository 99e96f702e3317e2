package models

import "time"

// UserPreference stores one screen's UI state for one connection as JSON.
type UserPreference struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"-"`
	ConnectionID uint      `gorm:"column:connection_id;uniqueIndex:idx_pref_conn_screen" json:"connection_id"`
	ScreenID     string    `gorm:"column:screen_id;size:128;uniqueIndex:idx_pref_conn_screen" json:"screen_id"`
	Data         string    `gorm:"column:data;type:text" json:"data"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
