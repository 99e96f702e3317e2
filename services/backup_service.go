package services

import (
	"context"
	"database/sql"

	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"
)

// NLSSettings feed the export script NLS_LANG hint.
type NLSSettings struct {
	Language  string `json:"language"`
	Territory string `json:"territory"`
	DBCharset string `json:"db_charset"`
}

// Script is a generated, copy-pasteable command.
type Script struct {
	Script string `json:"script"`
}

// BackupService reads RMAN history and renders backup and export scripts.
type BackupService interface {
	Jobs(ctx context.Context) ([]map[string]any, error)
	Summary(ctx context.Context) ([]map[string]any, error)
	Sets(ctx context.Context, sessionKey int) ([]map[string]any, error)
	Files(ctx context.Context, bsKey int) ([]map[string]any, error)
	NLS(ctx context.Context) (*NLSSettings, error)
	ExcludedSchemas(ctx context.Context) ([]string, error)
	Rman(opts scriptgen.RmanOptions) (*Script, error)
	Expdp(ctx context.Context, opts scriptgen.ExpdpOptions) (*Script, error)
	TNS(opts scriptgen.TNSOptions) (*Script, error)
}

type backupService struct {
	oracleBase
}

func NewBackupService(deps OracleDeps) BackupService {
	return &backupService{oracleBase{deps}}
}

func (s *backupService) Jobs(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "backup_jobs", backupJobsQuery)
}

func (s *backupService) Summary(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "backup_summary", backupSummaryQuery)
}

func (s *backupService) Sets(ctx context.Context, sessionKey int) ([]map[string]any, error) {
	if sessionKey <= 0 {
		return nil, utils.Invalidf("session_key is required")
	}
	return s.rows(ctx, "backup_sets", backupSetsQuery, sql.Named("session_key", sessionKey))
}

func (s *backupService) Files(ctx context.Context, bsKey int) ([]map[string]any, error) {
	if bsKey <= 0 {
		return nil, utils.Invalidf("bs_key is required")
	}
	return s.rows(ctx, "backup_files", backupFilesQuery, sql.Named("bs_key", bsKey))
}

func (s *backupService) NLS(ctx context.Context) (*NLSSettings, error) {
	nls := &NLSSettings{Language: oracle.NotAvailable, Territory: oracle.NotAvailable, DBCharset: oracle.NotAvailable}
	rows, err := s.rows(ctx, "nls", nlsQuery)
	if err != nil {
		if isNoActive(err) {
			return nil, err
		}
		return nls, nil
	}
	if len(rows) == 0 {
		return nls, nil
	}
	if v := readmodel.String(rows[0], "language"); v != "" {
		nls.Language = v
	}
	if v := readmodel.String(rows[0], "territory"); v != "" {
		nls.Territory = v
	}
	if v := readmodel.String(rows[0], "db_charset"); v != "" {
		nls.DBCharset = v
	}
	return nls, nil
}

// ExcludedSchemas falls back to the configured list when no connection is
// active.
func (s *backupService) ExcludedSchemas(ctx context.Context) ([]string, error) {
	db, _, err := s.conn(ctx)
	if err != nil {
		if !isNoActive(err) {
			logger.Warnf("Excluded schemas from config only: %v", err)
		}
		return excludedSchemas(ctx, nil), nil
	}
	return excludedSchemas(ctx, db), nil
}

func (s *backupService) Rman(opts scriptgen.RmanOptions) (*Script, error) {
	if err := utils.ValidateStruct(opts); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, utils.Invalid(err)
	}
	return &Script{Script: scriptgen.GenerateRman(opts)}, nil
}

func (s *backupService) Expdp(ctx context.Context, opts scriptgen.ExpdpOptions) (*Script, error) {
	if err := utils.ValidateStruct(opts); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, utils.Invalid(err)
	}
	if opts.ExcludeInternalSchemas && len(opts.SystemSchemas) == 0 {
		opts.SystemSchemas, _ = s.ExcludedSchemas(ctx)
	}
	return &Script{Script: scriptgen.GenerateExpdp(opts)}, nil
}

func (s *backupService) TNS(opts scriptgen.TNSOptions) (*Script, error) {
	if err := opts.Validate(); err != nil {
		return nil, utils.Invalid(err)
	}
	return &Script{Script: scriptgen.GenerateTNS(opts)}, nil
}
