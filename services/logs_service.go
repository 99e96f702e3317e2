package services

import (
	"context"
	"database/sql"

	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/services/oracle"
)

// DefaultAlertLimit is how many alert log lines are returned by default.
const DefaultAlertLimit = 100

// LogsService reads the alert log, server alerts and init parameters.
type LogsService interface {
	Alert(ctx context.Context, limit int) ([]map[string]any, error)
	Outstanding(ctx context.Context) ([]map[string]any, error)
	Parameters(ctx context.Context) ([]map[string]any, error)
}

type logsService struct {
	oracleBase
}

func NewLogsService(deps OracleDeps) LogsService {
	return &logsService{oracleBase{deps}}
}

// Alert reads v$diag_alert_ext, then v$alert_log. When neither view is
// readable a single row describing the error is returned.
func (s *logsService) Alert(ctx context.Context, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = DefaultAlertLimit
	}
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	lim := sql.Named("lim", limit)
	rows, err := s.rowsOn(ctx, db, "alert_log", alertLogQuery, lim)
	if err == nil {
		return rows, nil
	}
	rows, legacyErr := oracle.QueryMaps(ctx, db, alertLogLegacyQuery, lim)
	if legacyErr == nil {
		return rows, nil
	}
	logger.Warnf("Alert log views unavailable: %v", legacyErr)
	return []map[string]any{{
		"timestamp":    oracle.NotAvailable,
		"message_text": "Error accessing alert log views: " + err.Error(),
	}}, nil
}

func (s *logsService) Outstanding(ctx context.Context) ([]map[string]any, error) {
	return s.rowsOrEmpty(ctx, "outstanding_alerts", outstandingAlertsQuery)
}

func (s *logsService) Parameters(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "parameters", parametersQuery)
}
