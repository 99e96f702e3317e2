package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/services/oracle"
)

// DashboardMetrics is the landing page summary.
type DashboardMetrics struct {
	Sessions struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"sessions"`
	SGA    map[string]any `json:"sga"`
	Health struct {
		Objects  map[string]int `json:"objects"`
		Cursors  int            `json:"cursors"`
		Triggers map[string]int `json:"triggers"`
	} `json:"health"`
}

// DashboardService builds the summary widgets and the healthcheck.
type DashboardService interface {
	Metrics(ctx context.Context) (*DashboardMetrics, error)
	Tablespaces(ctx context.Context) ([]map[string]any, error)
	Healthcheck(ctx context.Context) ([]Finding, error)
}

type dashboardService struct {
	oracleBase
}

func NewDashboardService(deps OracleDeps) DashboardService {
	return &dashboardService{oracleBase{deps}}
}

func (s *dashboardService) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	out := &DashboardMetrics{SGA: map[string]any{}}
	if out.Sessions.Total, err = scalarInt(ctx, db, sessionTotalQuery); err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	if out.Sessions.Active, err = scalarInt(ctx, db, sessionActiveQuery); err != nil {
		return nil, fmt.Errorf("count active sessions: %w", err)
	}

	sga, err := s.rowsOn(ctx, db, "sga_info", sgaInfoQuery)
	if err != nil {
		return nil, err
	}
	for _, r := range sga {
		out.SGA[readmodel.String(r, "name")] = r["bytes"]
	}

	if out.Health.Objects, err = s.statusCounts(ctx, db, "object_status", objectStatusQuery); err != nil {
		return nil, err
	}
	if out.Health.Cursors, err = scalarInt(ctx, db, openCursorsQuery); err != nil {
		return nil, fmt.Errorf("count cursors: %w", err)
	}
	if out.Health.Triggers, err = s.statusCounts(ctx, db, "trigger_status", triggerStatusQuery); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *dashboardService) statusCounts(ctx context.Context, db *sql.DB, op, query string) (map[string]int, error) {
	rows, err := s.rowsOn(ctx, db, op, query)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[readmodel.String(r, "status")] = readmodel.Int(r, "cnt")
	}
	return out, nil
}

func scalarInt(ctx context.Context, db *sql.DB, query string) (int, error) {
	vals, err := oracle.QueryStrings(ctx, db, query)
	if err != nil || len(vals) == 0 || vals[0] == "" {
		return 0, err
	}
	f, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", vals[0], err)
	}
	return int(f), nil
}

func (s *dashboardService) Tablespaces(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "tablespace_summary", tablespaceSummaryQuery)
}

func (s *dashboardService) Healthcheck(ctx context.Context) ([]Finding, error) {
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(DefaultParamChecks))
	for i, c := range DefaultParamChecks {
		names[i] = c.Name
	}
	list, args := namedList("p", names)
	params, err := s.rowsOn(ctx, db, "health_params", fmt.Sprintf(healthParamsQuery, list), args...)
	if err != nil {
		return nil, err
	}
	in := HealthInput{
		Params:   make(map[string]ParamValue, len(params)),
		Profiles: map[string]map[string]string{},
	}
	for _, p := range params {
		in.Params[readmodel.String(p, "name")] = ParamValue{
			Value:     readmodel.String(p, "value"),
			IsDefault: strings.EqualFold(readmodel.String(p, "isdefault"), "TRUE"),
		}
	}

	profiles, err := s.rowsOn(ctx, db, "health_profiles", healthProfilesQuery)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		name := readmodel.String(p, "profile")
		if in.Profiles[name] == nil {
			in.Profiles[name] = map[string]string{}
		}
		in.Profiles[name][readmodel.String(p, "resource_name")] = readmodel.String(p, "limit")
	}

	audit, err := oracle.QueryStrings(ctx, db, auditTrailQuery)
	if err != nil {
		return nil, fmt.Errorf("fetch audit_trail: %w", err)
	}
	if len(audit) > 0 {
		in.AuditTrail = audit[0]
	}
	return EvaluateHealth(in, DefaultParamChecks), nil
}
