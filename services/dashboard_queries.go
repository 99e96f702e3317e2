package services

const (
	sessionTotalQuery  = `SELECT COUNT(*) FROM v$session`
	sessionActiveQuery = `SELECT COUNT(*) FROM v$session WHERE status = 'ACTIVE' AND type != 'BACKGROUND'`
	sgaInfoQuery       = `SELECT name, bytes FROM v$sgainfo`
	objectStatusQuery  = `SELECT status, COUNT(*) AS cnt FROM dba_objects WHERE owner NOT IN ('SYS', 'SYSTEM') GROUP BY status`
	openCursorsQuery   = `
		SELECT SUM(a.value)
		FROM v$sesstat a
		JOIN v$statname b ON a.statistic# = b.statistic#
		WHERE b.name = 'opened cursors current'`
	triggerStatusQuery = `SELECT status, COUNT(*) AS cnt FROM dba_triggers GROUP BY status`

	tablespaceSummaryQuery = `
		SELECT
			df.tablespace_name,
			ROUND(df.bytes / 1024 / 1024, 2) AS total_mb,
			ROUND((df.bytes - NVL(fs.bytes, 0)) / 1024 / 1024, 2) AS used_mb,
			ROUND(NVL(fs.bytes, 0) / 1024 / 1024, 2) AS free_mb,
			ROUND((df.bytes - NVL(fs.bytes, 0)) / df.bytes * 100, 2) AS used_pct
		FROM (SELECT tablespace_name, SUM(bytes) AS bytes FROM dba_data_files GROUP BY tablespace_name) df
		LEFT JOIN (SELECT tablespace_name, SUM(bytes) AS bytes FROM dba_free_space GROUP BY tablespace_name) fs
			ON df.tablespace_name = fs.tablespace_name
		ORDER BY used_pct DESC`

	// healthParamsQuery takes the bound parameter name list.
	healthParamsQuery   = `SELECT name, value, isdefault FROM v$parameter WHERE name IN (%s)`
	healthProfilesQuery = `
		SELECT profile, resource_name, limit
		FROM dba_profiles
		WHERE resource_name IN ('FAILED_LOGIN_ATTEMPTS', 'PASSWORD_LIFE_TIME')`
	auditTrailQuery = `SELECT value FROM v$parameter WHERE name = 'audit_trail'`
)
