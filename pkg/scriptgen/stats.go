package scriptgen

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Gather levels.
const (
	GatherDatabase   = "DATABASE"
	GatherSchema     = "SCHEMA"
	GatherTable      = "TABLE"
	GatherDictionary = "DICTIONARY"
)

// DBMS_STATS keyword values accepted in place of a literal.
const (
	AutoSampleSize = "AUTO_SAMPLE_SIZE"
	AutoDegree     = "AUTO_DEGREE"
	AutoCascade    = "AUTO_CASCADE"
	AutoInvalidate = "AUTO_INVALIDATE"
)

// GatherStatsOptions are the DBMS_STATS gather form fields. EstimatePercent
// and Degree take either a number or their AUTO keyword. Cascade and
// NoInvalidate take TRUE, FALSE or their AUTO keyword; empty omits them.
type GatherStatsOptions struct {
	Level           string `json:"level" validate:"omitempty,oneof=DATABASE SCHEMA TABLE DICTIONARY"`
	Owner           string `json:"owner"`
	Table           string `json:"table_name"`
	EstimatePercent string `json:"estimate_percent"`
	MethodOpt       string `json:"method_opt"`
	Degree          string `json:"degree"`
	Granularity     string `json:"granularity"`
	Cascade         string `json:"cascade" validate:"omitempty,oneof=TRUE FALSE AUTO_CASCADE"`
	NoInvalidate    string `json:"no_invalidate" validate:"omitempty,oneof=TRUE FALSE AUTO_INVALIDATE"`
}

// GatherStatsCall is a bound anonymous block plus a literal rendering of it
// for display.
type GatherStatsCall struct {
	SQL     string `json:"sql"`
	Args    []any  `json:"-"`
	Preview string `json:"preview"`
}

func (o GatherStatsOptions) level() string {
	if o.Level == "" {
		return GatherTable
	}
	return strings.ToUpper(o.Level)
}

// Validate checks the owner and table required by the level and that numeric
// fields parse.
func (o GatherStatsOptions) Validate() error {
	lvl := o.level()
	if (lvl == GatherSchema || lvl == GatherTable) && strings.TrimSpace(o.Owner) == "" {
		return fmt.Errorf("%w: owner is required for %s level", ErrInvalidOptions, strings.ToLower(lvl))
	}
	if lvl == GatherTable && strings.TrimSpace(o.Table) == "" {
		return fmt.Errorf("%w: table_name is required for table level", ErrInvalidOptions)
	}
	if o.EstimatePercent != "" && o.EstimatePercent != AutoSampleSize {
		if _, err := strconv.ParseFloat(o.EstimatePercent, 64); err != nil {
			return fmt.Errorf("%w: estimate_percent %q is not a number", ErrInvalidOptions, o.EstimatePercent)
		}
	}
	if o.Degree != "" && o.Degree != AutoDegree {
		if _, err := strconv.Atoi(o.Degree); err != nil {
			return fmt.Errorf("%w: degree %q is not an integer", ErrInvalidOptions, o.Degree)
		}
	}
	return nil
}

// GatherStatsPLSQL builds the DBMS_STATS call with named binds for every
// user-supplied value. Call Validate first; unparsable numbers are skipped.
func GatherStatsPLSQL(o GatherStatsOptions) GatherStatsCall {
	var (
		proc    string
		params  []string
		preview []string
		args    []any
	)
	bind := func(param, name string, value any, literal string) {
		params = append(params, param+" => :"+name)
		preview = append(preview, param+" => "+literal)
		args = append(args, sql.Named(name, value))
	}
	keyword := func(param, value string) {
		params = append(params, param+" => "+value)
		preview = append(preview, param+" => "+value)
	}

	owner := strings.ToUpper(o.Owner)
	table := strings.ToUpper(o.Table)

	switch o.level() {
	case GatherDatabase:
		proc = "GATHER_DATABASE_STATS"
	case GatherSchema:
		proc = "GATHER_SCHEMA_STATS"
		bind("ownname", "owner", owner, QuoteLiteral(owner))
	case GatherDictionary:
		proc = "GATHER_DICTIONARY_STATS"
	default:
		proc = "GATHER_TABLE_STATS"
		bind("ownname", "owner", owner, QuoteLiteral(owner))
		bind("tabname", "table_name", table, QuoteLiteral(table))
	}

	switch {
	case o.EstimatePercent == AutoSampleSize:
		keyword("estimate_percent", "DBMS_STATS.AUTO_SAMPLE_SIZE")
	case o.EstimatePercent != "":
		if pct, err := strconv.ParseFloat(o.EstimatePercent, 64); err == nil {
			bind("estimate_percent", "est_pct", pct, strconv.FormatFloat(pct, 'f', -1, 64))
		}
	}
	if o.MethodOpt != "" {
		bind("method_opt", "method_opt", o.MethodOpt, QuoteLiteral(o.MethodOpt))
	}
	switch {
	case o.Degree == AutoDegree:
		keyword("degree", "DBMS_STATS.AUTO_DEGREE")
	case o.Degree != "":
		if n, err := strconv.Atoi(o.Degree); err == nil {
			bind("degree", "degree", n, strconv.Itoa(n))
		}
	}
	if o.Granularity != "" {
		bind("granularity", "granularity", o.Granularity, QuoteLiteral(o.Granularity))
	}
	switch o.Cascade {
	case "TRUE", "FALSE":
		keyword("cascade", o.Cascade)
	case AutoCascade:
		keyword("cascade", "DBMS_STATS.AUTO_CASCADE")
	}
	switch o.NoInvalidate {
	case "TRUE", "FALSE":
		keyword("no_invalidate", o.NoInvalidate)
	case AutoInvalidate:
		keyword("no_invalidate", "DBMS_STATS.AUTO_INVALIDATE")
	}

	return GatherStatsCall{
		SQL:     "BEGIN DBMS_STATS." + proc + "(" + strings.Join(params, ", ") + "); END;",
		Args:    args,
		Preview: "BEGIN DBMS_STATS." + proc + "(" + strings.Join(preview, ", ") + "); END;",
	}
}

// LockStatsPLSQL returns the LOCK_TABLE_STATS or UNLOCK_TABLE_STATS block
// with owner and table bound by name.
func LockStatsPLSQL(owner, table string, lock bool) (string, []any) {
	proc := "UNLOCK_TABLE_STATS"
	if lock {
		proc = "LOCK_TABLE_STATS"
	}
	return "BEGIN DBMS_STATS." + proc + "(:owner, :table_name); END;",
		[]any{sql.Named("owner", strings.ToUpper(owner)), sql.Named("table_name", strings.ToUpper(table))}
}

// FlushMonitoringPLSQL flushes in-memory DML monitoring counters.
const FlushMonitoringPLSQL = "BEGIN DBMS_STATS.FLUSH_DATABASE_MONITORING_INFO; END;"
