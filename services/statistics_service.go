package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"
)

// StatsFilter narrows the stale and DML views.
type StatsFilter struct {
	Owner         string `form:"owner"`
	TableName     string `form:"table_name"`
	ExcludeSystem bool   `form:"exclude_system"`
}

// ActionResult is returned by statistics maintenance calls.
type ActionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatisticsService covers optimizer statistics and DML monitoring.
type StatisticsService interface {
	Stale(ctx context.Context, f StatsFilter) ([]map[string]any, error)
	DMLChanges(ctx context.Context, f StatsFilter) ([]map[string]any, error)
	Schemas(ctx context.Context, excludeSystem bool) ([]string, error)
	Tables(ctx context.Context, owner string) ([]string, error)
	Gather(ctx context.Context, opts scriptgen.GatherStatsOptions) (*ActionResult, error)
	PreviewGather(opts scriptgen.GatherStatsOptions) (*scriptgen.GatherStatsCall, error)
	Lock(ctx context.Context, req models.LockStatsRequest) (*ActionResult, error)
	Flush(ctx context.Context) (*ActionResult, error)
}

type statisticsService struct {
	oracleBase
}

func NewStatisticsService(deps OracleDeps) StatisticsService {
	return &statisticsService{oracleBase{deps}}
}

// hasColumn guards columns that only exist in later releases.
func hasColumn(ctx context.Context, db *sql.DB, table, column string) bool {
	rows, err := oracle.QueryStrings(ctx, db, hasColumnQuery,
		sql.Named("table_name", table), sql.Named("column_name", column))
	return err == nil && len(rows) > 0
}

// filterConditions renders the owner, table and system-schema filters.
func filterConditions(ctx context.Context, db *sql.DB, ownerCol string, f StatsFilter) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	owner := strings.ToUpper(strings.TrimSpace(f.Owner))
	if f.ExcludeSystem && owner == "" {
		if schemas := excludedSchemas(ctx, db); len(schemas) > 0 {
			list, binds := namedList("sys", schemas)
			fmt.Fprintf(&b, "\n\t\t  AND %s NOT IN (%s)", ownerCol, list)
			args = append(args, binds...)
		}
	}
	if owner != "" {
		fmt.Fprintf(&b, "\n\t\t  AND %s = :owner", ownerCol)
		args = append(args, sql.Named("owner", owner))
	}
	if table := strings.ToUpper(strings.TrimSpace(f.TableName)); table != "" {
		b.WriteString("\n\t\t  AND table_name LIKE :tab")
		args = append(args, sql.Named("tab", "%"+table+"%"))
	}
	return b.String(), args
}

// flush pushes in-memory monitoring counters so the views are current.
func (s *statisticsService) flush(ctx context.Context, db *sql.DB) {
	if err := oracle.Exec(ctx, db, scriptgen.FlushMonitoringPLSQL); err != nil {
		logger.Warnf("Flush of monitoring info failed: %v", err)
	}
}

func (s *statisticsService) Stale(ctx context.Context, f StatsFilter) ([]map[string]any, error) {
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	s.flush(ctx, db)
	typeCol := "'TABLE'"
	if hasColumn(ctx, db, "DBA_TAB_STATISTICS", "OBJECT_TYPE") {
		typeCol = "object_type"
	}
	where, args := filterConditions(ctx, db, "owner", f)
	return s.rowsOn(ctx, db, "stale_stats", fmt.Sprintf(staleStatsQuery, typeCol, where), args...)
}

func (s *statisticsService) DMLChanges(ctx context.Context, f StatsFilter) ([]map[string]any, error) {
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	s.flush(ctx, db)
	total := "(inserts + updates + deletes)"
	if hasColumn(ctx, db, "DBA_TAB_MODIFICATIONS", "TOTAL_MODIFICATIONS") {
		total = "total_modifications"
	}
	where, args := filterConditions(ctx, db, "table_owner", f)
	return s.rowsOn(ctx, db, "dml_changes", fmt.Sprintf(dmlChangesQuery, total, where), args...)
}

func (s *statisticsService) Schemas(ctx context.Context, excludeSystem bool) ([]string, error) {
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	where := ""
	var args []any
	if excludeSystem {
		if schemas := excludedSchemas(ctx, db); len(schemas) > 0 {
			list, binds := namedList("sys", schemas)
			where = " WHERE username NOT IN (" + list + ")"
			args = binds
		}
	}
	names, err := oracle.QueryStrings(ctx, db, fmt.Sprintf(statsSchemasQuery, where), args...)
	if err != nil {
		return nil, fmt.Errorf("fetch schemas: %w", err)
	}
	return names, nil
}

func (s *statisticsService) Tables(ctx context.Context, owner string) ([]string, error) {
	owner = strings.ToUpper(strings.TrimSpace(owner))
	if owner == "" {
		return nil, utils.Invalidf("owner is required")
	}
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	names, err := oracle.QueryStrings(ctx, db, statsTablesQuery, sql.Named("owner", owner))
	if err != nil {
		return nil, fmt.Errorf("fetch tables: %w", err)
	}
	return names, nil
}

func (s *statisticsService) PreviewGather(opts scriptgen.GatherStatsOptions) (*scriptgen.GatherStatsCall, error) {
	if err := utils.ValidateStruct(opts); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, utils.Invalid(err)
	}
	call := scriptgen.GatherStatsPLSQL(opts)
	return &call, nil
}

func (s *statisticsService) Gather(ctx context.Context, opts scriptgen.GatherStatsOptions) (*ActionResult, error) {
	call, err := s.PreviewGather(opts)
	if err != nil {
		return nil, err
	}
	level := strings.ToUpper(opts.Level)
	if level == "" {
		level = scriptgen.GatherTable
	}
	target := "DATABASE"
	switch {
	case opts.Owner != "" && opts.Table != "":
		target = strings.ToUpper(opts.Owner) + "." + strings.ToUpper(opts.Table)
	case opts.Owner != "":
		target = strings.ToUpper(opts.Owner)
	}
	err = s.act(ctx, activity.CategoryStatistics, call.Preview, func(ctx context.Context, db *sql.DB, _ *models.DatabaseConnection) error {
		return oracle.Exec(ctx, db, call.SQL, call.Args...)
	})
	if err != nil {
		return nil, err
	}
	return &ActionResult{Status: "success", Message: fmt.Sprintf("Statistics gathered for %s (%s)", target, level)}, nil
}

func (s *statisticsService) Lock(ctx context.Context, req models.LockStatsRequest) (*ActionResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	action := strings.ToUpper(req.Action)
	if action == "" {
		action = "LOCK"
	}
	stmt, args := scriptgen.LockStatsPLSQL(req.Owner, req.TableName, action == "LOCK")
	target := strings.ToUpper(req.Owner) + "." + strings.ToUpper(req.TableName)
	err := s.act(ctx, activity.CategoryStatistics, strings.ToLower(action)+" stats "+target, func(ctx context.Context, db *sql.DB, _ *models.DatabaseConnection) error {
		return oracle.Exec(ctx, db, stmt, args...)
	})
	if err != nil {
		return nil, err
	}
	return &ActionResult{Status: "success", Message: fmt.Sprintf("Statistics %sed for %s", strings.ToLower(action), target)}, nil
}

func (s *statisticsService) Flush(ctx context.Context) (*ActionResult, error) {
	if err := s.exec(ctx, activity.CategoryStatistics, scriptgen.FlushMonitoringPLSQL); err != nil {
		return nil, err
	}
	return &ActionResult{Status: "success", Message: "Database monitoring information flushed successfully"}, nil
}
