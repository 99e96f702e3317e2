package oracle

import (
	"context"
	"database/sql"
	"fmt"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
)

// NotAvailable fills optional discovery fields that could not be read.
const NotAvailable = "N/A"

// Discovery describes the database behind a connection.
type Discovery struct {
	Name        string `json:"name"`
	DBType      string `json:"db_type"`
	Role        string `json:"role"`
	LogMode     string `json:"log_mode"`
	Version     string `json:"version"`
	InstName    string `json:"inst_name"`
	OS          string `json:"os"`
	IsRAC       bool   `json:"is_rac"`
	Patch       string `json:"patch"`
	ApplyStatus string `json:"apply_status"`
	PDBName     string `json:"pdb_name,omitempty"`
}

// Apply copies the discovery fields onto a stored profile.
func (d *Discovery) Apply(c *models.DatabaseConnection) {
	c.Version = d.Version
	c.Patch = d.Patch
	c.OS = d.OS
	c.DBType = d.DBType
	c.Role = d.Role
	c.ApplyStatus = d.ApplyStatus
	c.LogMode = d.LogMode
	c.IsRAC = d.IsRAC
	c.InstName = d.InstName
}

// Discover reads identity, role and topology of the connected database.
// Only the v$database and v$instance reads are mandatory.
func Discover(ctx context.Context, db *sql.DB) (*Discovery, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var d Discovery
	var cdb string
	err := db.QueryRowContext(ctx, databaseInfoQuery).Scan(&d.Name, &cdb, &d.Role, &d.LogMode)
	if err != nil {
		logger.Debugf("v$database CDB column unavailable, retrying without it: %v", err)
		if err := db.QueryRowContext(ctx, databaseInfoLegacyQuery).Scan(&d.Name, &cdb, &d.Role, &d.LogMode); err != nil {
			return nil, fmt.Errorf("query v$database: %w", err)
		}
	}

	var parallel string
	if err := db.QueryRowContext(ctx, instanceInfoQuery).Scan(&d.Version, &d.InstName, &d.OS, &parallel); err != nil {
		return nil, fmt.Errorf("query v$instance: %w", err)
	}
	d.IsRAC = parallel == "YES"

	d.DBType = "NON-CDB"
	if cdb == "YES" {
		d.DBType = "CDB"
	}

	d.Patch = NotAvailable
	var version, comments sql.NullString
	if err := db.QueryRowContext(ctx, patchQuery).Scan(&version, &comments); err == nil {
		d.Patch = fmt.Sprintf("%s (%s)", version.String, comments.String)
	}

	d.ApplyStatus = NotAvailable
	if d.Role == "PHYSICAL STANDBY" {
		var mode string
		if err := db.QueryRowContext(ctx, applyStatusQuery).Scan(&mode); err == nil {
			d.ApplyStatus = mode
		}
	}

	if d.DBType == "CDB" {
		var con string
		if err := db.QueryRowContext(ctx, containerNameQuery).Scan(&con); err == nil && con != "" && con != "CDB$ROOT" {
			d.DBType = "PDB"
			d.PDBName = con
		}
	}
	return &d, nil
}
