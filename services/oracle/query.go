package oracle

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"oraconsoleapi/config"
)

// TimeLayout is how DATE and TIMESTAMP columns are rendered in JSON rows.
const TimeLayout = "2006-01-02 15:04:05"

// Queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	timeout := config.Cfg.OracleQueryTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// QueryMaps runs query and returns one map per row keyed by lower-cased
// column name. It never returns a nil slice on success.
func QueryMaps(ctx context.Context, q Queryer, query string, args ...any) ([]map[string]any, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	for i, c := range cols {
		cols[i] = strings.ToLower(c)
	}

	out := make([]map[string]any, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			row[c] = normalize(vals[i])
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// QueryMap returns the first row of query, or nil when there is none.
func QueryMap(ctx context.Context, q Queryer, query string, args ...any) (map[string]any, error) {
	rows, err := QueryMaps(ctx, q, query, args...)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// QueryStrings returns the first column of every row as a string.
func QueryStrings(ctx context.Context, q Queryer, query string, args ...any) ([]string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s sql.NullString
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s.String)
	}
	return out, rows.Err()
}

// Exec runs a statement or anonymous PL/SQL block.
func Exec(ctx context.Context, e Execer, stmt string, args ...any) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	_, err := e.ExecContext(ctx, stmt, args...)
	return err
}

func normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(TimeLayout)
	default:
		return v
	}
}
