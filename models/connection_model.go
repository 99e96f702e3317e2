package models

import "time"

// Connection environment types.
const (
	ConnTypeProd = "PROD"
	ConnTypeDev  = "DEV"
	ConnTypeTest = "TEST"
)

// Connection modes and privileged roles.
const (
	ModeBasic  = "BASIC"
	ModeString = "STRING"

	RoleNormal  = "NORMAL"
	RoleSysDBA  = "SYSDBA"
	RoleSysOper = "SYSOPER"
)

// MaskedPassword replaces stored passwords in every list response.
const MaskedPassword = "••••••••"

// DatabaseConnection is a saved Oracle connection profile.
// Password holds the sealed secret, never clear text.
// Discovery fields are filled when the profile is activated.
type DatabaseConnection struct {
	ID             uint       `gorm:"primaryKey;column:id" json:"id"`
	Name           string     `gorm:"column:name;not null" json:"name"`
	Host           string     `gorm:"column:host" json:"host"`
	Port           string     `gorm:"column:port" json:"port"`
	Service        string     `gorm:"column:service" json:"service"`
	Username       string     `gorm:"column:username;not null" json:"username"`
	Password       string     `gorm:"column:password;not null" json:"password"`
	Type           string     `gorm:"column:type" json:"type"`                                     // PROD, DEV or TEST
	ConnectionMode string     `gorm:"column:connection_mode;default:BASIC" json:"connection_mode"` // BASIC builds the descriptor from host/port/service
	ConnectionRole string     `gorm:"column:connection_role;default:NORMAL" json:"connection_role"`
	ConnectString  string     `gorm:"column:connect_string" json:"connect_string"`
	WalletPath     string     `gorm:"column:wallet_path" json:"wallet_path"`
	TNSAdmin       string     `gorm:"column:tns_admin" json:"tns_admin"`
	IsActive       bool       `gorm:"column:is_active;default:false;index" json:"is_active"`
	LastConnected  *time.Time `gorm:"column:last_connected" json:"last_connected"`
	Status         string     `gorm:"-" json:"status"`

	Version     string `gorm:"column:version" json:"version"`
	Patch       string `gorm:"column:patch" json:"patch"`
	OS          string `gorm:"column:os" json:"os"`
	DBType      string `gorm:"column:db_type" json:"db_type"` // CDB, PDB or NON-CDB
	Role        string `gorm:"column:role" json:"role"`
	ApplyStatus string `gorm:"column:apply_status" json:"apply_status"`
	LogMode     string `gorm:"column:log_mode" json:"log_mode"`
	IsRAC       bool   `gorm:"column:is_rac" json:"is_rac"`
	InstName    string `gorm:"column:inst_name" json:"inst_name"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the static table name for GORM.
func (DatabaseConnection) TableName() string {
	return "connections"
}

// Masked returns a copy safe to serialize to clients.
func (c DatabaseConnection) Masked() DatabaseConnection {
	c.Password = MaskedPassword
	return c
}
