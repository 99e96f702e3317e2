// Package readmodel holds the pure derivations behind the console's list views:
// record normalization, filter predicates, counts, WHERE-clause building and
// storage aggregation. Nothing here performs I/O.
package readmodel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Session status values reported by V$SESSION.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusKilled   = "KILLED"
	StatusSniped   = "SNIPED"
)

// Session is the canonical session row served by the API.
type Session struct {
	SID             int     `json:"sid"`
	Serial          int     `json:"serial"`
	InstID          int     `json:"inst_id"`
	Username        string  `json:"username"`
	Status          string  `json:"status"`
	Type            string  `json:"type"`
	Program         string  `json:"program"`
	Machine         string  `json:"machine"`
	OSUser          string  `json:"osuser"`
	SPID            string  `json:"spid,omitempty"`
	Event           string  `json:"event"`
	WaitClass       string  `json:"wait_class"`
	SQLID           string  `json:"sql_id"`
	PrevSQLID       string  `json:"prev_sql_id"`
	Command         string  `json:"command"`
	Schema          string  `json:"owner"`
	BlockingSession *int    `json:"blocking_session,omitempty"`
	LastCallET      int64   `json:"last_call_et"`
	SecondsInWait   int64   `json:"seconds_in_wait"`
	FileIO          float64 `json:"file_io"`
	CPU             float64 `json:"cpu"`
	ParallelSlaves  int     `json:"pqs"`
}

// IsBlocked reports whether another session holds a lock this one waits on.
func (s Session) IsBlocked() bool {
	return s.BlockingSession != nil
}

// NormalizeSession maps one raw row onto Session. It is the only place where
// alias spellings such as sql_id/sqlId/SQL_ID or serial#/serial are resolved.
func NormalizeSession(raw map[string]any) Session {
	s := Session{
		SID:            Int(raw, "sid", "SID"),
		Serial:         Int(raw, "serial#", "serial", "SERIAL#", "SERIAL", "serial_num"),
		InstID:         Int(raw, "inst_id", "instId", "INST_ID"),
		Username:       String(raw, "username", "USERNAME", "user"),
		Status:         strings.ToUpper(String(raw, "status", "STATUS")),
		Type:           strings.ToUpper(String(raw, "type", "TYPE")),
		Program:        String(raw, "program", "PROGRAM"),
		Machine:        String(raw, "machine", "MACHINE"),
		OSUser:         String(raw, "osuser", "osUser", "OSUSER"),
		SPID:           String(raw, "spid", "SPID"),
		Event:          String(raw, "event", "EVENT"),
		WaitClass:      String(raw, "wait_class", "waitClass", "WAIT_CLASS"),
		SQLID:          String(raw, "sql_id", "sqlId", "SQL_ID"),
		PrevSQLID:      String(raw, "prev_sql_id", "prevSqlId", "PREV_SQL_ID"),
		Command:        String(raw, "command", "COMMAND"),
		Schema:         String(raw, "owner", "schemaname", "schema", "SCHEMANAME"),
		LastCallET:     int64(Int(raw, "last_call_et", "lastCallEt", "elapsed", "LAST_CALL_ET")),
		SecondsInWait:  int64(Int(raw, "seconds_in_wait", "secondsInWait", "SECONDS_IN_WAIT")),
		FileIO:         Float(raw, "file_io", "FILE_IO"),
		CPU:            Float(raw, "cpu", "CPU"),
		ParallelSlaves: Int(raw, "pqs", "PQS"),
	}
	if s.InstID == 0 {
		s.InstID = 1
	}
	if v, ok := lookup(raw, "blocking_session", "blockingSession", "BLOCKING_SESSION"); ok {
		if b, ok := toInt(v); ok {
			s.BlockingSession = &b
		}
	}
	return s
}

// NormalizeSessions applies NormalizeSession to every row.
func NormalizeSessions(rows []map[string]any) []Session {
	out := make([]Session, 0, len(rows))
	for _, r := range rows {
		out = append(out, NormalizeSession(r))
	}
	return out
}

func lookup(raw map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String returns the first present alias rendered as a string, or "".
func String(raw map[string]any, keys ...string) string {
	v, ok := lookup(raw, keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Int returns the first present alias coerced to int, or 0.
func Int(raw map[string]any, keys ...string) int {
	v, ok := lookup(raw, keys...)
	if !ok {
		return 0
	}
	n, _ := toInt(v)
	return n
}

// Float returns the first present alias coerced to float64, or 0.
func Float(raw map[string]any, keys ...string) float64 {
	v, ok := lookup(raw, keys...)
	if !ok {
		return 0
	}
	f, _ := toFloat(v)
	return f
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return int(math.Round(f)), true
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
		return f, err == nil
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
