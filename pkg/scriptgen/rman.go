// Package scriptgen renders copy-pasteable RMAN, Data Pump, TNS and SQL text
// from structured options. Every generator is a pure function of its input.
package scriptgen

import (
	"fmt"
	"strings"
)

// RMAN actions, backup types and restore options.
const (
	RmanBackup  = "BACKUP"
	RmanRestore = "RESTORE"

	BackupFull        = "FULL"
	BackupIncremental = "INCR"
	BackupArchivelog  = "ARCH"

	RestoreFull     = "RESTORE"
	RestorePreview  = "PREVIEW"
	RestoreValidate = "VALIDATE"
)

// RmanOptions are the RMAN generator form fields.
type RmanOptions struct {
	Action        string `json:"action" validate:"omitempty,oneof=BACKUP RESTORE"`
	Target        string `json:"target" validate:"required"`
	BackupType    string `json:"backup_type" validate:"omitempty,oneof=FULL INCR ARCH"`
	Compress      bool   `json:"compress"`
	Tag           string `json:"tag"`
	RestoreOption string `json:"restore_option" validate:"omitempty,oneof=RESTORE PREVIEW VALIDATE"`
	SCN           string `json:"scn"`
}

// Validate performs the required-field check that gates execution.
func (o RmanOptions) Validate() error {
	if strings.TrimSpace(o.Target) == "" {
		return fmt.Errorf("%w: target is required", ErrInvalidOptions)
	}
	return nil
}

// GenerateRman renders a RUN block allocating one disk channel.
func GenerateRman(o RmanOptions) string {
	var b strings.Builder
	b.WriteString("RUN {\n")

	if o.Action != RmanRestore {
		b.WriteString("  # Backup Configuration\n")
		b.WriteString("  ALLOCATE CHANNEL c1 DEVICE TYPE DISK;\n")
		b.WriteString("  BACKUP")
		if o.BackupType == BackupIncremental {
			b.WriteString(" INCREMENTAL LEVEL 1")
		}
		if o.BackupType == BackupArchivelog {
			b.WriteString(" ARCHIVELOG ALL")
		} else if o.Compress {
			b.WriteString(" AS COMPRESSED BACKUPSET")
		}
		b.WriteString(" " + o.Target)
		if o.Tag != "" {
			b.WriteString(" TAG '" + o.Tag + "'")
		}
		b.WriteString(";\n")
		if o.BackupType != BackupArchivelog {
			b.WriteString("  BACKUP ARCHIVELOG ALL DELETE INPUT;\n")
		}
	} else {
		b.WriteString("  # Restore Configuration\n")
		b.WriteString("  ALLOCATE CHANNEL c1 DEVICE TYPE DISK;\n")
		switch o.RestoreOption {
		case RestorePreview:
			b.WriteString("  RESTORE " + o.Target + " PREVIEW;\n")
		case RestoreValidate:
			b.WriteString("  RESTORE " + o.Target + " VALIDATE;\n")
		default:
			if o.SCN != "" {
				b.WriteString("  SET UNTIL SCN " + o.SCN + ";\n")
			}
			b.WriteString("  RESTORE " + o.Target + ";\n")
			b.WriteString("  RECOVER " + o.Target + ";\n")
		}
	}

	b.WriteString("  RELEASE CHANNEL c1;\n}")
	return b.String()
}
