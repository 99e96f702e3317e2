package services

const (
	legacyJobsQuery = `
		SELECT
			job,
			log_user AS schema_name,
			TO_CHAR(last_date, 'YYYY-MM-DD HH24:MI:SS') AS last_run,
			TO_CHAR(next_date, 'YYYY-MM-DD HH24:MI:SS') AS next_run,
			failures,
			broken,
			interval AS frequency,
			what AS details
		FROM dba_jobs
		ORDER BY job`

	runningJobsQuery = `
		SELECT
			r.sid,
			s.serial# AS serial,
			r.job,
			TO_CHAR(r.this_date, 'YYYY-MM-DD HH24:MI:SS') AS start_time,
			s.event,
			s.seconds_in_wait,
			s.state,
			j.what AS details
		FROM dba_jobs_running r
		JOIN dba_jobs j ON j.job = r.job
		JOIN v$session s ON s.sid = r.sid
		ORDER BY r.this_date`
)
