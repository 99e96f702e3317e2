package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"
)

// DefaultHistoryDays is the redo switch history window.
const DefaultHistoryDays = 7

// RedoService covers online, standby and archived redo.
type RedoService interface {
	Groups(ctx context.Context) ([]map[string]any, error)
	History(ctx context.Context, days, thread int) ([]map[string]any, error)
	Threads(ctx context.Context) ([]int, error)
	StandbyLogs(ctx context.Context) ([]map[string]any, error)
	ArchivedLogs(ctx context.Context) ([]map[string]any, error)
	LogBuffer(ctx context.Context) (map[string]any, error)
	Management(ctx context.Context) (map[string]any, error)
	Members(ctx context.Context) ([]map[string]any, error)
	AddGroup(ctx context.Context, req models.RedoGroupAddRequest) error
	DropGroup(ctx context.Context, req models.RedoGroupDropRequest) error
	AddMember(ctx context.Context, req models.RedoMemberAddRequest) error
	DropMember(ctx context.Context, req models.RedoMemberDropRequest) error
	Switch(ctx context.Context) error
}

type redoService struct {
	oracleBase
}

func NewRedoService(deps OracleDeps) RedoService {
	return &redoService{oracleBase{deps}}
}

func (s *redoService) Groups(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "redo_groups", redoGroupsQuery)
}

// hourColumns renders h00..h23 switch counts per day.
func hourColumns() string {
	cols := make([]string, 24)
	for h := 0; h < 24; h++ {
		cols[h] = fmt.Sprintf("TO_CHAR(SUM(DECODE(TO_CHAR(first_time, 'HH24'), '%02d', 1, 0)), '9999') AS h%02d", h, h)
	}
	return strings.Join(cols, ",\n\t\t\t")
}

func (s *redoService) History(ctx context.Context, days, thread int) ([]map[string]any, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	args := []any{sql.Named("days", days)}
	threadClause := ""
	if thread > 0 {
		threadClause = "AND thread# = :thread"
		args = append(args, sql.Named("thread", thread))
	}
	rows, err := s.rows(ctx, "redo_history", fmt.Sprintf(redoHistoryQuery, hourColumns(), threadClause), args...)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		for k, v := range r {
			if str, ok := v.(string); ok && strings.HasPrefix(k, "h") {
				r[k] = strings.TrimSpace(str)
			}
		}
	}
	return rows, nil
}

func (s *redoService) Threads(ctx context.Context) ([]int, error) {
	rows, err := s.rows(ctx, "redo_threads", redoThreadsQuery)
	if err != nil {
		return nil, err
	}
	threads := make([]int, 0, len(rows))
	for _, r := range rows {
		threads = append(threads, readmodel.Int(r, "thread#"))
	}
	return threads, nil
}

func (s *redoService) StandbyLogs(ctx context.Context) ([]map[string]any, error) {
	return s.rowsOrEmpty(ctx, "standby_logs", standbyLogsQuery)
}

func (s *redoService) ArchivedLogs(ctx context.Context) ([]map[string]any, error) {
	return s.rowsOrEmpty(ctx, "archived_logs", archivedLogsQuery)
}

func (s *redoService) LogBuffer(ctx context.Context) (map[string]any, error) {
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	stats, err := s.rowsOn(ctx, db, "log_buffer", logBufferStatsQuery)
	if err != nil {
		return out, nil
	}
	for _, r := range stats {
		out[strings.ToLower(readmodel.String(r, "name"))] = r["value"]
	}
	if size, err := oracle.QueryStrings(ctx, db, logBufferSizeQuery); err == nil && len(size) > 0 {
		out["log_buffer_size"] = size[0]
	}
	return out, nil
}

func (s *redoService) Management(ctx context.Context) (map[string]any, error) {
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	params, err := s.rowsOn(ctx, db, "archive_params", archiveParamsQuery)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	for _, p := range params {
		out[readmodel.String(p, "name")] = p["value"]
	}
	status, err := oracle.QueryMap(ctx, db, archiveStatusQuery)
	if err != nil {
		return nil, fmt.Errorf("fetch archive status: %w", err)
	}
	for k, v := range status {
		out[k] = v
	}
	return out, nil
}

func (s *redoService) Members(ctx context.Context) ([]map[string]any, error) {
	return s.rowsOrEmpty(ctx, "redo_members", redoMembersQuery)
}

func (s *redoService) AddGroup(ctx context.Context, req models.RedoGroupAddRequest) error {
	thread := req.Thread
	if thread <= 0 {
		thread = 1
	}
	stmt, err := scriptgen.AddRedoGroupSQL(thread, req.SizeMB, req.MemberPath)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.exec(ctx, activity.CategoryRedo, stmt)
}

func (s *redoService) DropGroup(ctx context.Context, req models.RedoGroupDropRequest) error {
	stmt, err := scriptgen.DropRedoGroupSQL(req.GroupID)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.exec(ctx, activity.CategoryRedo, stmt)
}

func (s *redoService) AddMember(ctx context.Context, req models.RedoMemberAddRequest) error {
	stmt, err := scriptgen.AddRedoMemberSQL(req.GroupID, req.MemberPath)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.exec(ctx, activity.CategoryRedo, stmt)
}

func (s *redoService) DropMember(ctx context.Context, req models.RedoMemberDropRequest) error {
	stmt, err := scriptgen.DropRedoMemberSQL(req.MemberPath)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.exec(ctx, activity.CategoryRedo, stmt)
}

// Switch archives the current log, falling back to a plain log switch when
// the database runs in NOARCHIVELOG mode.
func (s *redoService) Switch(ctx context.Context) error {
	return s.act(ctx, activity.CategoryRedo, "switch logfile", func(ctx context.Context, db *sql.DB, _ *models.DatabaseConnection) error {
		if err := oracle.Exec(ctx, db, scriptgen.ArchiveLogCurrentSQL); err != nil {
			logger.Warnf("Archive log current failed, switching logfile instead: %v", err)
			return oracle.Exec(ctx, db, scriptgen.SwitchLogfileSQL)
		}
		return nil
	})
}
