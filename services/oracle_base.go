package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"oraconsoleapi/config"
	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/metrics"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"
)

// OracleDeps are shared by every service that queries the active connection.
type OracleDeps struct {
	Provider oracle.Provider
	Activity *activity.Log
	Metrics  *metrics.Metrics
}

// StatusOK is the body returned by mutation endpoints.
var StatusOK = map[string]string{"status": "success"}

type oracleBase struct {
	OracleDeps
}

func (b oracleBase) conn(ctx context.Context) (*sql.DB, *models.DatabaseConnection, error) {
	return b.Provider.Active(ctx)
}

// rows runs a read query on the active connection. op names the query in
// metrics and error messages.
func (b oracleBase) rows(ctx context.Context, op, query string, args ...any) ([]map[string]any, error) {
	db, _, err := b.conn(ctx)
	if err != nil {
		return nil, err
	}
	return b.rowsOn(ctx, db, op, query, args...)
}

func (b oracleBase) rowsOn(ctx context.Context, db *sql.DB, op, query string, args ...any) ([]map[string]any, error) {
	start := time.Now()
	rows, err := oracle.QueryMaps(ctx, db, query, args...)
	b.Metrics.ObserveQuery(op, start)
	if err != nil {
		b.Metrics.RecordError(op)
		logger.Errorf("Error fetching %s: %v", op, err)
		return nil, fmt.Errorf("fetch %s: %w", op, err)
	}
	return rows, nil
}

// rowsOrEmpty degrades a failed optional query to an empty list.
func (b oracleBase) rowsOrEmpty(ctx context.Context, op, query string, args ...any) ([]map[string]any, error) {
	db, _, err := b.conn(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := b.rowsOn(ctx, db, op, query, args...)
	if err != nil {
		return []map[string]any{}, nil
	}
	return rows, nil
}

// act runs a mutation on the active connection and records it in the
// activity log.
func (b oracleBase) act(ctx context.Context, category, message string, fn func(ctx context.Context, db *sql.DB, conn *models.DatabaseConnection) error) error {
	db, conn, err := b.conn(ctx)
	if err != nil {
		return err
	}
	run := func() error {
		start := time.Now()
		err := fn(ctx, db, conn)
		b.Metrics.ObserveQuery(category, start)
		return err
	}
	if b.Activity == nil {
		return run()
	}
	return b.Activity.Track(conn.ID, category, message, run)
}

// exec runs one statement as a recorded action.
func (b oracleBase) exec(ctx context.Context, category, stmt string, args ...any) error {
	return b.act(ctx, category, stmt, func(ctx context.Context, db *sql.DB, _ *models.DatabaseConnection) error {
		return oracle.Exec(ctx, db, stmt, args...)
	})
}

// excludedSchemas merges the configured system schemas with the accounts
// the database itself flags as Oracle-maintained.
func excludedSchemas(ctx context.Context, db *sql.DB) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range config.Cfg.SystemSchemas {
		add(s)
	}
	if db != nil {
		maintained, err := oracle.QueryStrings(ctx, db, oracleMaintainedQuery)
		if err != nil {
			// oracle_maintained exists from 12c on
			logger.Debugf("Oracle-maintained users unavailable: %v", err)
		}
		for _, s := range maintained {
			add(s)
		}
	}
	sort.Strings(out)
	return out
}

// namedList renders :prefix0, :prefix1 ... and the matching binds.
func namedList(prefix string, values []string) (string, []any) {
	names := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		name := fmt.Sprintf("%s%d", prefix, i)
		names[i] = ":" + name
		args[i] = sql.Named(name, v)
	}
	return strings.Join(names, ", "), args
}

func isNoActive(err error) bool {
	return errors.Is(err, utils.ErrNoActiveConnection)
}

const oracleMaintainedQuery = `SELECT username FROM dba_users WHERE oracle_maintained = 'Y'`
