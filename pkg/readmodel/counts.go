package readmodel

// SessionCounts is the header summary of the sessions view.
type SessionCounts struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Inactive   int `json:"inactive"`
	Killed     int `json:"killed"`
	Blocked    int `json:"blocked"`
	Parallel   int `json:"parallel"`
	Background int `json:"background"`
}

// CountSessions reduces a session list to SessionCounts. Active and Inactive
// need not add up to Total since KILLED and SNIPED sessions are counted apart.
// Blocked counts sessions waiting on another session's lock.
func CountSessions(sessions []Session) SessionCounts {
	var c SessionCounts
	for _, s := range sessions {
		c.Total++
		switch s.Status {
		case StatusActive:
			c.Active++
		case StatusInactive:
			c.Inactive++
		case StatusKilled, StatusSniped:
			c.Killed++
		}
		if s.IsBlocked() {
			c.Blocked++
		}
		if s.ParallelSlaves > 0 {
			c.Parallel++
		}
		if s.Type == "BACKGROUND" {
			c.Background++
		}
	}
	return c
}

// LegacyJob is a DBA_JOBS row.
type LegacyJob struct {
	Job        int    `json:"job"`
	SchemaName string `json:"schema_name"`
	LastRun    string `json:"last_run"`
	NextRun    string `json:"next_run"`
	Failures   int    `json:"failures"`
	Broken     string `json:"broken"`
	Frequency  string `json:"frequency"`
	Details    string `json:"details"`
}

// NormalizeLegacyJob maps a raw DBA_JOBS row onto LegacyJob.
func NormalizeLegacyJob(raw map[string]any) LegacyJob {
	return LegacyJob{
		Job:        Int(raw, "job", "JOB"),
		SchemaName: String(raw, "schema_name", "log_user", "SCHEMA_NAME"),
		LastRun:    String(raw, "last_run", "LAST_RUN"),
		NextRun:    String(raw, "next_run", "NEXT_RUN"),
		Failures:   Int(raw, "failures", "FAILURES"),
		Broken:     String(raw, "broken", "BROKEN"),
		Frequency:  String(raw, "frequency", "interval", "FREQUENCY"),
		Details:    String(raw, "details", "what", "DETAILS"),
	}
}

// JobCounts summarizes the legacy job list.
type JobCounts struct {
	Total   int `json:"total"`
	Broken  int `json:"broken"`
	Failing int `json:"failing"`
	Healthy int `json:"healthy"`
}

// CountJobs reduces a job list to JobCounts.
func CountJobs(jobs []LegacyJob) JobCounts {
	var c JobCounts
	for _, j := range jobs {
		c.Total++
		switch {
		case j.Broken == "Y":
			c.Broken++
		case j.Failures > 0:
			c.Failing++
		default:
			c.Healthy++
		}
	}
	return c
}
