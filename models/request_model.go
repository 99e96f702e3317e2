package models

// ConnectionRequest is the create/update/test payload for a connection profile.
type ConnectionRequest struct {
	Name           string `json:"name" validate:"required,max=128"`
	Host           string `json:"host" validate:"required_if=ConnectionMode BASIC,omitempty,oracle_host"`
	Port           string `json:"port" validate:"required_if=ConnectionMode BASIC,omitempty,port"`
	Service        string `json:"service" validate:"required_if=ConnectionMode BASIC"`
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=PROD DEV TEST"`
	ConnectionMode string `json:"connection_mode" validate:"omitempty,oneof=BASIC STRING"`
	ConnectionRole string `json:"connection_role" validate:"omitempty,oneof=NORMAL SYSDBA SYSOPER"`
	ConnectString  string `json:"connect_string" validate:"required_if=ConnectionMode STRING"`
	WalletPath     string `json:"wallet_path"`
	TNSAdmin       string `json:"tns_admin"`
}

// PreferenceRequest saves one screen's UI state.
type PreferenceRequest struct {
	ScreenID string                 `json:"screen_id" validate:"required,max=128"`
	Data     map[string]interface{} `json:"data"`
}

type DatafileResizeRequest struct {
	FileID    int `json:"file_id" validate:"required,gt=0"`
	NewSizeMB int `json:"new_size_mb" validate:"required,gt=0"`
}

type DatafileAddRequest struct {
	TablespaceName string `json:"tablespace_name" validate:"required"`
	FileName       string `json:"file_name" validate:"required"`
	SizeMB         int    `json:"size_mb" validate:"required,gt=0"`
}

type RedoGroupAddRequest struct {
	Thread     int    `json:"thread"`
	SizeMB     int    `json:"size_mb" validate:"required,gt=0"`
	MemberPath string `json:"member_path"`
}

type RedoGroupDropRequest struct {
	GroupID int `json:"group_id" validate:"required,gt=0"`
}

type RedoMemberAddRequest struct {
	GroupID    int    `json:"group_id" validate:"required,gt=0"`
	MemberPath string `json:"member_path" validate:"required"`
}

type RedoMemberDropRequest struct {
	MemberPath string `json:"member_path" validate:"required"`
}

// LockStatsRequest locks or unlocks table statistics.
type LockStatsRequest struct {
	Owner     string `json:"owner" validate:"required"`
	TableName string `json:"table_name" validate:"required"`
	Action    string `json:"action" validate:"omitempty,oneof=LOCK UNLOCK"`
}

// JobSubmitRequest submits a legacy DBMS_JOB.
type JobSubmitRequest struct {
	What     string `json:"what" validate:"required"`
	NextDate string `json:"next_date" validate:"omitempty,datetime=2006-01-02 15:04:05"`
	Interval string `json:"interval"`
}
