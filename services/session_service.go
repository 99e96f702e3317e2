package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"oraconsoleapi/config"
	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"
)

// SQLText is the full statement text of a cursor.
type SQLText struct {
	SQLID   string `json:"sql_id"`
	SQLText string `json:"sql_text"`
}

// KillResult is returned after a session kill.
type KillResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SessionService reads and kills sessions on the active connection.
type SessionService interface {
	Sessions(ctx context.Context, filters readmodel.SessionFilters, instID int) ([]readmodel.Session, error)
	Blocking(ctx context.Context, instID int) ([]map[string]any, error)
	Zombies(ctx context.Context, instID int) ([]map[string]any, error)
	LongOps(ctx context.Context, instID int) ([]map[string]any, error)
	LongOpsStats(ctx context.Context) ([]map[string]any, error)
	Instances(ctx context.Context) ([]map[string]any, error)
	SQLText(ctx context.Context, sqlID string) (*SQLText, error)
	Blocker(ctx context.Context, sid, instID int) (map[string]any, error)
	ObjectDDL(ctx context.Context, objectType, owner, name string) (string, error)
	Kill(ctx context.Context, sid, serial, instID int) (*KillResult, error)
	KillCommands(rows []map[string]any) []scriptgen.KillCommand
}

type sessionService struct {
	oracleBase
	sqlCache *lru.Cache[string, string]
}

// NewSessionService builds a SessionService. SQL texts are cached per
// connection in an LRU of config.Cfg.SQLTextCacheSize entries.
func NewSessionService(deps OracleDeps) SessionService {
	size := config.Cfg.SQLTextCacheSize
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		logger.Warnf("SQL text cache disabled: %v", err)
	}
	return &sessionService{oracleBase: oracleBase{deps}, sqlCache: cache}
}

// instClause restricts a query to one instance when instID is positive.
func instClause(column string, instID int) (string, []any) {
	if instID <= 0 {
		return "", nil
	}
	return fmt.Sprintf("AND %s = :inst_id", column), []any{sql.Named("inst_id", instID)}
}

func (s *sessionService) Sessions(ctx context.Context, filters readmodel.SessionFilters, instID int) ([]readmodel.Session, error) {
	if len(filters.SystemSchemas) == 0 {
		filters.SystemSchemas = config.Cfg.SystemSchemas
	}
	where := readmodel.BuildSessionWhere(filters)
	extra, args := instClause("s.inst_id", instID)
	if extra != "" {
		where += "\n  " + extra
	}
	rows, err := s.rows(ctx, "sessions", fmt.Sprintf(sessionsQuery, where), args...)
	if err != nil {
		return nil, err
	}
	sessions := readmodel.NormalizeSessions(rows)
	if filters.Search != "" {
		sessions = readmodel.FilterSessions(sessions, readmodel.SessionFilters{
			ShowInactive: true, ShowBackground: true, ShowSystem: true,
			ShowIdleWaits: true, ShowKilled: true, Search: filters.Search,
		})
	}
	return sessions, nil
}

func (s *sessionService) Blocking(ctx context.Context, instID int) ([]map[string]any, error) {
	extra, args := instClause("s.inst_id", instID)
	return s.rows(ctx, "blocking_sessions", fmt.Sprintf(blockingSessionsQuery, extra), args...)
}

func (s *sessionService) Zombies(ctx context.Context, instID int) ([]map[string]any, error) {
	extra, args := instClause("s.inst_id", instID)
	return s.rows(ctx, "zombie_sessions", fmt.Sprintf(zombieSessionsQuery, extra), args...)
}

func (s *sessionService) LongOps(ctx context.Context, instID int) ([]map[string]any, error) {
	extra, args := instClause("l.inst_id", instID)
	return s.rows(ctx, "long_ops", fmt.Sprintf(longOpsQuery, extra), args...)
}

func (s *sessionService) LongOpsStats(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "long_ops_stats", longOpsStatsQuery)
}

func (s *sessionService) Instances(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "instances", instancesQuery)
}

func (s *sessionService) SQLText(ctx context.Context, sqlID string) (*SQLText, error) {
	sqlID = strings.TrimSpace(sqlID)
	if sqlID == "" {
		return nil, utils.Invalidf("sql_id is required")
	}
	db, conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%d/%s", conn.ID, sqlID)
	if s.sqlCache != nil {
		if text, ok := s.sqlCache.Get(key); ok {
			return &SQLText{SQLID: sqlID, SQLText: text}, nil
		}
	}
	texts, err := oracle.QueryStrings(ctx, db, sqlTextQuery, sql.Named("sql_id", sqlID))
	if err != nil {
		s.Metrics.RecordError("sql_text")
		return nil, fmt.Errorf("fetch sql text: %w", err)
	}
	if len(texts) == 0 {
		return nil, utils.NotFoundf("SQL not found in cursor cache")
	}
	if s.sqlCache != nil {
		s.sqlCache.Add(key, texts[0])
	}
	return &SQLText{SQLID: sqlID, SQLText: texts[0]}, nil
}

func (s *sessionService) Blocker(ctx context.Context, sid, instID int) (map[string]any, error) {
	if instID <= 0 {
		instID = 1
	}
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	args := []any{sql.Named("sid", sid), sql.Named("inst_id", instID)}
	session, err := oracle.QueryMap(ctx, db, blockerSessionQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch blocker: %w", err)
	}
	if session == nil {
		return nil, utils.NotFoundf("Session not found")
	}
	locks, err := s.rowsOn(ctx, db, "blocker_locks", blockerLocksQuery, args...)
	if err != nil {
		return nil, err
	}
	waiters, err := s.rowsOn(ctx, db, "blocker_waiters", blockerWaitersQuery, args...)
	if err != nil {
		return nil, err
	}
	session["locked_objects"] = locks
	session["waiters"] = waiters
	session["sql_text"] = ""
	if id := readmodel.String(session, "sql_id", "prev_sql_id"); id != "" {
		if text, err := s.SQLText(ctx, id); err == nil {
			session["sql_text"] = text.SQLText
		}
	}
	return session, nil
}

func (s *sessionService) ObjectDDL(ctx context.Context, objectType, owner, name string) (string, error) {
	objectType = strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(objectType)), " ", "_")
	owner = strings.ToUpper(strings.TrimSpace(owner))
	name = strings.ToUpper(strings.TrimSpace(name))
	if objectType == "" || owner == "" || name == "" {
		return "", utils.Invalidf("type, owner and name are required")
	}
	db, _, err := s.conn(ctx)
	if err != nil {
		return "", err
	}
	ddl, err := oracle.QueryStrings(ctx, db, objectDDLQuery,
		sql.Named("obj_type", objectType), sql.Named("name", name), sql.Named("owner", owner))
	if err != nil {
		return "", fmt.Errorf("get ddl: %w", err)
	}
	if len(ddl) == 0 {
		return "", utils.NotFoundf("Object not found")
	}
	return ddl[0], nil
}

func (s *sessionService) Kill(ctx context.Context, sid, serial, instID int) (*KillResult, error) {
	if sid <= 0 || serial < 0 {
		return nil, utils.Invalidf("sid and serial are required")
	}
	msg := fmt.Sprintf("kill session %d,%d", sid, serial)
	err := s.act(ctx, activity.CategorySession, msg, func(ctx context.Context, db *sql.DB, conn *models.DatabaseConnection) error {
		return oracle.Exec(ctx, db, scriptgen.KillSessionSQL(sid, serial, instID, conn.IsRAC))
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("Killed session %d,%d inst=%d", sid, serial, instID)
	return &KillResult{Success: true, Message: fmt.Sprintf("Session %d,%d killed", sid, serial)}, nil
}

func (s *sessionService) KillCommands(rows []map[string]any) []scriptgen.KillCommand {
	return scriptgen.KillCommands(readmodel.NormalizeSessions(rows))
}
