package services

const (
	// sessionsQuery takes the WHERE clause built from the session filters.
	sessionsQuery = `
		SELECT
			s.inst_id,
			s.sid,
			s.serial# AS serial,
			s.username,
			s.status,
			s.type,
			s.program,
			s.machine,
			s.osuser,
			p.spid,
			s.sql_id,
			s.prev_sql_id,
			s.last_call_et,
			s.event,
			s.wait_class,
			s.seconds_in_wait,
			s.blocking_session,
			(SELECT ROUND(SUM(io.physical_reads + io.block_gets + io.consistent_gets) / 1024, 2)
			   FROM gv$sess_io io WHERE io.sid = s.sid AND io.inst_id = s.inst_id) AS file_io,
			(SELECT st.value FROM gv$sesstat st JOIN v$statname sn ON st.statistic# = sn.statistic#
			  WHERE st.sid = s.sid AND st.inst_id = s.inst_id AND sn.name = 'CPU used by this session') AS cpu,
			(SELECT c.command_name FROM v$sqlcommand c WHERE c.command_type = s.command) AS command,
			(SELECT COUNT(*) FROM gv$px_session px WHERE px.qcsid = s.sid AND px.inst_id = s.inst_id) AS pqs,
			s.schemaname AS owner
		FROM gv$session s
		LEFT JOIN gv$process p ON p.addr = s.paddr AND p.inst_id = s.inst_id
		%s
		ORDER BY s.last_call_et DESC`

	blockingSessionsQuery = `
		SELECT
			s.inst_id,
			s.sid,
			s.serial# AS serial,
			s.username,
			s.status,
			s.program,
			s.machine,
			s.osuser,
			s.event,
			s.wait_class,
			s.sql_id,
			s.seconds_in_wait,
			s.blocking_session,
			s.blocking_instance,
			s.final_blocking_session,
			o.owner || '.' || o.object_name AS locked_object
		FROM gv$session s
		LEFT JOIN dba_objects o ON o.object_id = s.row_wait_obj#
		WHERE s.blocking_session IS NOT NULL
		%s
		ORDER BY s.seconds_in_wait DESC`

	zombieSessionsQuery = `
		SELECT
			s.inst_id,
			s.sid,
			s.serial# AS serial,
			s.username,
			s.status,
			s.type,
			s.program,
			s.machine,
			s.osuser,
			s.last_call_et,
			p.spid
		FROM gv$session s
		LEFT JOIN gv$process p ON p.addr = s.paddr AND p.inst_id = s.inst_id
		WHERE (s.status IN ('KILLED', 'SNIPED') OR (s.type = 'USER' AND p.addr IS NULL))
		%s
		ORDER BY s.last_call_et DESC`

	longOpsQuery = `
		SELECT
			l.inst_id,
			l.sid,
			l.serial# AS serial,
			l.username,
			l.opname,
			l.target,
			l.sofar,
			l.totalwork,
			l.units,
			ROUND(l.sofar / NULLIF(l.totalwork, 0) * 100, 2) AS pct_done,
			l.time_remaining,
			l.elapsed_seconds,
			l.sql_id,
			TO_CHAR(l.start_time, 'YYYY-MM-DD HH24:MI:SS') AS start_time,
			l.message
		FROM gv$session_longops l
		WHERE l.sofar < l.totalwork
		%s
		ORDER BY l.start_time DESC`

	longOpsStatsQuery = `
		SELECT
			opname,
			COUNT(*) AS ops,
			SUM(CASE WHEN sofar < totalwork THEN 1 ELSE 0 END) AS running,
			ROUND(AVG(elapsed_seconds), 1) AS avg_elapsed,
			MAX(elapsed_seconds) AS max_elapsed
		FROM gv$session_longops
		WHERE start_time > SYSDATE - 1
		GROUP BY opname
		ORDER BY ops DESC`

	instancesQuery = `
		SELECT
			inst_id,
			instance_number,
			instance_name,
			host_name,
			status,
			version,
			TO_CHAR(startup_time, 'YYYY-MM-DD HH24:MI:SS') AS startup_time
		FROM gv$instance
		ORDER BY inst_id`

	sqlTextQuery = `SELECT sql_fulltext FROM v$sql WHERE sql_id = :sql_id AND ROWNUM = 1`

	blockerSessionQuery = `
		SELECT
			s.inst_id,
			s.sid,
			s.serial# AS serial,
			s.username,
			s.status,
			s.program,
			s.machine,
			s.osuser,
			s.event,
			s.wait_class,
			s.sql_id,
			s.prev_sql_id,
			s.last_call_et,
			TO_CHAR(s.logon_time, 'YYYY-MM-DD HH24:MI:SS') AS logon_time,
			p.spid
		FROM gv$session s
		LEFT JOIN gv$process p ON p.addr = s.paddr AND p.inst_id = s.inst_id
		WHERE s.sid = :sid AND s.inst_id = :inst_id`

	blockerLocksQuery = `
		SELECT o.owner, o.object_name, o.object_type, l.locked_mode
		FROM gv$locked_object l
		JOIN dba_objects o ON o.object_id = l.object_id
		WHERE l.session_id = :sid AND l.inst_id = :inst_id
		ORDER BY o.owner, o.object_name`

	blockerWaitersQuery = `
		SELECT inst_id, sid, serial# AS serial, username, event, seconds_in_wait, sql_id
		FROM gv$session
		WHERE blocking_session = :sid AND blocking_instance = :inst_id
		ORDER BY seconds_in_wait DESC`

	objectDDLQuery = `SELECT DBMS_METADATA.GET_DDL(:obj_type, :name, :owner) FROM dual`
)
