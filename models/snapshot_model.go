package models

import "time"

// WorkloadSnapshot is one time machine sample of the active connection.
// The list columns hold the JSON-encoded rows as served by the sessions API.
type WorkloadSnapshot struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	ConnectionID   uint      `gorm:"column:connection_id;index:idx_snap_conn_time" json:"connection_id"`
	CapturedAt     time.Time `gorm:"column:captured_at;index:idx_snap_conn_time" json:"time"`
	SessionCount   int       `gorm:"column:session_count" json:"session_count"`
	ActiveSessions int       `gorm:"column:active_sessions" json:"active_sessions"`
	SessionsJSON   string    `gorm:"column:sessions_json;type:text" json:"-"`
	LongOpsJSON    string    `gorm:"column:long_ops_json;type:text" json:"-"`
	BlockingJSON   string    `gorm:"column:blocking_json;type:text" json:"-"`
}

func (WorkloadSnapshot) TableName() string {
	return "workload_snapshots"
}
