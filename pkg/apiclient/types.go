package apiclient

import (
	"time"

	"oraconsoleapi/pkg/readmodel"
)

// Rows is a list of raw view rows keyed by column name.
type Rows = []map[string]any

// Discovery is what activation and test read from the database.
type Discovery struct {
	Name        string `json:"name"`
	DBType      string `json:"db_type"`
	Role        string `json:"role"`
	LogMode     string `json:"log_mode"`
	Version     string `json:"version"`
	InstName    string `json:"inst_name"`
	OS          string `json:"os"`
	IsRAC       bool   `json:"is_rac"`
	Patch       string `json:"patch"`
	ApplyStatus string `json:"apply_status"`
	PDBName     string `json:"pdb_name,omitempty"`
}

// DiscoveryResponse answers activate and test.
type DiscoveryResponse struct {
	Message   string     `json:"message"`
	Discovery *Discovery `json:"discovery,omitempty"`
}

// MessageResponse answers update and delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse answers the mutation endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// ConnectionStatus is the lifecycle of the active connection.
type ConnectionStatus struct {
	Phase        string     `json:"status"`
	ConnectionID uint       `json:"connection_id,omitempty"`
	Since        time.Time  `json:"since"`
	LastError    string     `json:"last_error,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

type SQLText struct {
	SQLID   string `json:"sql_id"`
	SQLText string `json:"sql_text"`
}

type KillResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ActionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Script is a generated command text.
type Script struct {
	Script string `json:"script"`
}

type NLSSettings struct {
	Language  string `json:"language"`
	Territory string `json:"territory"`
	DBCharset string `json:"db_charset"`
}

// TablespaceMap is the extent map of one tablespace.
type TablespaceMap struct {
	Tablespace string                   `json:"tablespace"`
	Extents    []readmodel.ExtentBlock  `json:"extents"`
	Metrics    readmodel.StorageSummary `json:"metrics"`
}

// FRAUsage is the fill level of the fast recovery area.
type FRAUsage struct {
	Name          string  `json:"name"`
	LimitMB       float64 `json:"limit_mb"`
	UsedMB        float64 `json:"used_mb"`
	ReclaimableMB float64 `json:"reclaimable_mb"`
	FreeMB        float64 `json:"free_mb"`
	UsedPct       float64 `json:"used_pct"`
	Files         int     `json:"files"`
}

type SpaceUsage struct {
	Name    string  `json:"tablespace_name,omitempty"`
	TotalMB float64 `json:"total_mb"`
	UsedMB  float64 `json:"used_mb"`
	FreeMB  float64 `json:"free_mb"`
}

type ChartPoint struct {
	Name string  `json:"name"`
	MB   float64 `json:"mb"`
}

// StorageCharts is the storage overview. FRA and Datafiles are nil when the
// server could not read them.
type StorageCharts struct {
	FRA            *FRAUsage    `json:"fra"`
	Datafiles      *SpaceUsage  `json:"datafiles"`
	SGA            []ChartPoint `json:"sga"`
	SGATotalMB     float64      `json:"sga_total_mb"`
	PGA            []ChartPoint `json:"pga"`
	Undo           []SpaceUsage `json:"undo"`
	Temp           []SpaceUsage `json:"temp"`
	TopTablespaces []ChartPoint `json:"top_tablespaces"`
}

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

// Finding is one healthcheck recommendation.
type Finding struct {
	Category        string `json:"category"`
	Item            string `json:"item"`
	Status          string `json:"status"`
	Current         string `json:"current"`
	Suggested       string `json:"suggested"`
	Description     string `json:"description"`
	FixSQL          string `json:"fix_sql"`
	RestartRequired bool   `json:"restart_required"`
}

type HistoryPoint struct {
	Time           time.Time `json:"time"`
	SessionCount   int       `json:"session_count"`
	ActiveSessions int       `json:"active_sessions"`
}

// Snapshot is the workload recorded at one instant.
type Snapshot struct {
	Time     time.Time           `json:"time"`
	Sessions []readmodel.Session `json:"sessions"`
	LongOps  Rows                `json:"long_ops"`
	Blocking Rows                `json:"blocking"`
}

// ActivityEntry is one action or alert recorded by the server.
type ActivityEntry struct {
	ID           string     `json:"id"`
	ConnectionID uint       `json:"connection_id,omitempty"`
	Category     string     `json:"category"`
	Message      string     `json:"message"`
	Status       string     `json:"status"`
	Error        string     `json:"error,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}
