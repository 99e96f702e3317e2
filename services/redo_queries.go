package services

const (
	redoGroupsQuery = `
		SELECT group#, thread#, sequence#, ROUND(bytes / 1024 / 1024, 2) AS size_mb,
		       members, status, archived, inst_id
		FROM gv$log
		ORDER BY thread#, group#`

	// redoHistoryQuery takes an optional thread clause.
	redoHistoryQuery = `
		SELECT
			TO_CHAR(TRUNC(first_time), 'Mon DD') AS dg_date,
			%s
		FROM v$log_history
		WHERE first_time > SYSDATE - :days
		%s
		GROUP BY TRUNC(first_time)
		ORDER BY TRUNC(first_time) DESC`

	redoThreadsQuery = `
		SELECT DISTINCT thread#
		FROM v$log_history
		WHERE first_time > SYSDATE - 30
		ORDER BY thread#`

	standbyLogsQuery = `
		SELECT group#, thread#, sequence#, ROUND(bytes / 1024 / 1024, 2) AS size_mb, status
		FROM v$standby_log
		ORDER BY group#`

	archivedLogsQuery = `
		SELECT name, thread#, sequence#,
		       ROUND(blocks * block_size / 1024 / 1024, 2) AS size_mb,
		       TO_CHAR(first_time, 'YYYY-MM-DD HH24:MI:SS') AS time
		FROM v$archived_log
		WHERE name IS NOT NULL AND first_time > SYSDATE - 1
		ORDER BY first_time DESC
		FETCH FIRST 50 ROWS ONLY`

	logBufferStatsQuery = `
		SELECT name, value
		FROM v$sysstat
		WHERE name IN ('redo entries', 'redo groups yields', 'redo buffer allocation retries', 'redo log space requests')`

	logBufferSizeQuery = `SELECT ROUND(value / 1024 / 1024, 2) FROM v$parameter WHERE name = 'log_buffer'`

	archiveParamsQuery = `
		SELECT name, value
		FROM v$parameter
		WHERE name IN ('log_archive_dest_1', 'log_archive_format')`

	archiveStatusQuery = `
		SELECT
			(SELECT log_mode FROM v$database) AS db_log_mode,
			(SELECT value FROM v$parameter WHERE name = 'log_archive_dest_state_1') AS auto_archival,
			(SELECT destination FROM v$archive_dest WHERE dest_id = 1) AS archive_dest,
			(SELECT MIN(sequence#) FROM v$log) AS oldest_online_seq,
			(SELECT MAX(sequence#) + 1 FROM v$archived_log) AS next_archive_seq,
			(SELECT sequence# FROM v$log WHERE status = 'CURRENT' AND ROWNUM = 1) AS current_seq
		FROM dual`

	redoMembersQuery = `
		SELECT group#, member, type, is_recovery_dest_file
		FROM v$logfile
		ORDER BY group#`
)
