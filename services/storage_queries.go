package services

const (
	tablespacesQuery = `
		SELECT
			t.tablespace_name,
			t.block_size,
			t.initial_extent,
			t.next_extent,
			t.min_extents,
			t.max_extents,
			t.pct_increase,
			t.status,
			t.contents,
			t.logging,
			t.allocation_type,
			t.segment_space_management,
			ROUND(NVL(d.total_bytes, 0) / 1024 / 1024, 2) AS total_mb,
			ROUND((NVL(d.total_bytes, 0) - NVL(f.free_bytes, 0)) / 1024 / 1024, 2) AS used_mb,
			ROUND(NVL(f.free_bytes, 0) / 1024 / 1024, 2) AS free_mb,
			ROUND((NVL(d.total_bytes, 0) - NVL(f.free_bytes, 0)) / NULLIF(d.total_bytes, 0) * 100, 2) AS used_pct
		FROM dba_tablespaces t
		LEFT JOIN (SELECT tablespace_name, SUM(bytes) AS total_bytes FROM dba_data_files GROUP BY tablespace_name) d
			ON d.tablespace_name = t.tablespace_name
		LEFT JOIN (SELECT tablespace_name, SUM(bytes) AS free_bytes FROM dba_free_space GROUP BY tablespace_name) f
			ON f.tablespace_name = t.tablespace_name
		ORDER BY t.tablespace_name`

	datafilesQuery = `
		SELECT
			f.file_name,
			f.file_id,
			f.tablespace_name,
			ROUND(f.bytes / 1024 / 1024, 2) AS size_mb,
			f.status,
			f.autoextensible,
			ROUND(f.maxbytes / 1024 / 1024, 2) AS max_mb,
			ROUND(f.increment_by * (SELECT value FROM v$parameter WHERE name = 'db_block_size') / 1024 / 1024, 2) AS next_mb
		FROM dba_data_files f
		ORDER BY f.tablespace_name, f.file_name`

	// tablespaceMapQuery takes two optional file_id clauses.
	tablespaceMapQuery = `
		SELECT file_id, block_id, blocks, ROUND(bytes / 1024) AS size_kb, 'USED' AS status,
		       owner, segment_name, segment_type, partition_name
		FROM dba_extents
		WHERE tablespace_name = :ts_used %s
		UNION ALL
		SELECT file_id, block_id, blocks, ROUND(bytes / 1024) AS size_kb, 'FREE' AS status,
		       NULL, NULL, NULL, NULL
		FROM dba_free_space
		WHERE tablespace_name = :ts_free %s
		ORDER BY 1, 2`

	topSegmentsQuery = `
		SELECT owner || '.' || segment_name AS name, ROUND(bytes / 1024 / 1024, 2) AS value
		FROM dba_segments
		WHERE tablespace_name = :ts
		ORDER BY bytes DESC
		FETCH FIRST 10 ROWS ONLY`

	controlFilesQuery = `
		SELECT name, status, is_recovery_dest_file, block_size, file_size_blks,
		       ROUND(block_size * file_size_blks / 1024 / 1024, 2) AS size_mb
		FROM v$controlfile
		ORDER BY name`

	sysauxOccupantsQuery = `
		SELECT occupant_name, occupant_desc, schema_name, move_procedure,
		       ROUND(space_usage_kbytes / 1024, 2) AS space_mb
		FROM v$sysaux_occupants
		ORDER BY space_usage_kbytes DESC`

	undoStatsQuery = `
		SELECT
			TO_CHAR(begin_time, 'YYYY-MM-DD HH24:MI') AS begin_time,
			TO_CHAR(end_time, 'YYYY-MM-DD HH24:MI') AS end_time,
			undoblks,
			txncount,
			maxquerylen,
			maxconcurrency,
			ssolderrcnt,
			nospaceerrcnt,
			activeblks,
			unexpiredblks,
			expiredblks,
			tuned_undoretention
		FROM v$undostat
		ORDER BY begin_time DESC
		FETCH FIRST 144 ROWS ONLY`

	tempUsageQuery = `
		SELECT
			u.username,
			s.sid,
			u.session_num AS serial,
			u.tablespace,
			u.segtype,
			ROUND(u.blocks * t.block_size / 1024 / 1024, 2) AS size_mb,
			u.sql_id
		FROM v$tempseg_usage u
		JOIN dba_tablespaces t ON t.tablespace_name = u.tablespace
		LEFT JOIN v$session s ON s.saddr = u.session_addr
		ORDER BY u.blocks DESC`

	checkpointQuery = `
		SELECT
			recovery_estimated_ios,
			actual_redo_blks,
			target_redo_blks,
			log_file_size_redo_blks,
			log_chkpt_timeout_redo_blks,
			log_chkpt_interval_redo_blks,
			target_mttr,
			estimated_mttr,
			ckpt_block_writes
		FROM v$instance_recovery`
)

const (
	chartFRAQuery = `
		SELECT
			name,
			TRUNC(space_limit / 1024 / 1024) AS limit_mb,
			TRUNC(space_used / 1024 / 1024) AS used_mb,
			TRUNC(space_reclaimable / 1024 / 1024) AS reclaimable_mb,
			number_of_files
		FROM v$recovery_file_dest`

	chartDatafilesQuery = `
		WITH ts_usage AS (
			SELECT tablespace_name, SUM(bytes) AS total_bytes FROM dba_data_files GROUP BY tablespace_name
		),
		ts_free AS (
			SELECT tablespace_name, SUM(bytes) AS free_bytes FROM dba_free_space GROUP BY tablespace_name
		)
		SELECT
			TRUNC(SUM(u.total_bytes) / 1024 / 1024) AS total_mb,
			TRUNC(SUM(u.total_bytes - NVL(f.free_bytes, 0)) / 1024 / 1024) AS used_mb,
			TRUNC(SUM(NVL(f.free_bytes, 0)) / 1024 / 1024) AS free_mb
		FROM ts_usage u
		LEFT JOIN ts_free f ON f.tablespace_name = u.tablespace_name`

	chartSGAQuery = `
		SELECT NVL(pool, name) AS name, TRUNC(SUM(bytes) / 1024 / 1024) AS mb
		FROM v$sgastat
		GROUP BY NVL(pool, name)
		ORDER BY mb DESC`

	chartSGATotalQuery = `SELECT TRUNC(SUM(value) / 1024 / 1024) AS mb FROM v$sga`

	chartPGAQuery = `
		SELECT name, TRUNC(value / 1024 / 1024) AS mb
		FROM v$pgastat
		WHERE name IN ('aggregate PGA target parameter', 'aggregate PGA auto target', 'total PGA allocated', 'total PGA inuse')`

	chartUndoQuery = `
		SELECT
			df.tablespace_name,
			TRUNC(SUM(df.bytes) / 1024 / 1024) AS total_mb,
			TRUNC((SUM(df.bytes) - NVL(MAX(fs.free_bytes), 0)) / 1024 / 1024) AS used_mb,
			TRUNC(NVL(MAX(fs.free_bytes), 0) / 1024 / 1024) AS free_mb
		FROM dba_data_files df
		LEFT JOIN (SELECT tablespace_name, SUM(bytes) AS free_bytes FROM dba_free_space GROUP BY tablespace_name) fs
			ON fs.tablespace_name = df.tablespace_name
		WHERE df.tablespace_name IN (SELECT tablespace_name FROM dba_tablespaces WHERE contents = 'UNDO')
		GROUP BY df.tablespace_name
		ORDER BY df.tablespace_name`

	chartTempQuery = `
		SELECT
			tablespace_name,
			TRUNC(tablespace_size * p.block_size / 1024 / 1024) AS total_mb,
			TRUNC(allocated_space * p.block_size / 1024 / 1024) AS used_mb,
			TRUNC(free_space * p.block_size / 1024 / 1024) AS free_mb
		FROM v$temp_tablespace_utilization,
			(SELECT TO_NUMBER(value) AS block_size FROM v$parameter WHERE name = 'db_block_size') p
		ORDER BY tablespace_name`

	chartTempFilesQuery = `
		SELECT tablespace_name, TRUNC(SUM(bytes) / 1024 / 1024) AS total_mb
		FROM dba_temp_files
		GROUP BY tablespace_name
		ORDER BY tablespace_name`

	chartTopTablespacesQuery = `
		SELECT * FROM (
			SELECT tablespace_name AS name, TRUNC(SUM(bytes) / 1024 / 1024) AS mb
			FROM dba_data_files
			GROUP BY tablespace_name
			ORDER BY mb DESC
		) WHERE ROWNUM <= 10`
)
