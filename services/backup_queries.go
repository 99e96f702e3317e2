package services

const (
	backupJobsQuery = `
		SELECT
			session_key,
			command_id,
			status,
			TO_CHAR(start_time, 'DD-MON HH24:MI') AS start_time,
			TO_CHAR(end_time, 'DD-MON HH24:MI') AS end_time,
			input_type,
			output_device_type,
			input_bytes_display,
			output_bytes_display,
			time_taken_display
		FROM v$rman_backup_job_details
		ORDER BY session_key DESC
		FETCH FIRST 50 ROWS ONLY`

	backupSummaryQuery = `
		SELECT
			input_type,
			COUNT(*) AS total_backups,
			status,
			ROUND(SUM(output_bytes) / 1024 / 1024 / 1024, 2) AS size_gb
		FROM v$rman_backup_job_details
		WHERE start_time > SYSDATE - 30
		GROUP BY input_type, status
		ORDER BY input_type, status`

	backupSetsQuery = `
		SELECT
			bs.bs_key,
			bs.backup_type AS type,
			p.tag,
			p.device_type,
			bs.pieces,
			ROUND(SUM(p.bytes) / 1024 / 1024, 2) AS size_mb
		FROM v$backup_set_details bs
		JOIN v$backup_piece_details p ON p.bs_key = bs.bs_key
		WHERE bs.session_key = :session_key
		GROUP BY bs.bs_key, bs.backup_type, p.tag, p.device_type, bs.pieces
		ORDER BY bs.bs_key`

	backupFilesQuery = `
		SELECT
			d.file# AS file_no,
			t.name AS tablespace,
			TO_CHAR(d.checkpoint_change#) AS checkpoint_scn,
			ROUND(d.blocks * d.block_size / 1024 / 1024, 2) AS size_mb
		FROM v$backup_datafile d
		JOIN v$backup_set s ON s.set_stamp = d.set_stamp AND s.set_count = d.set_count
		LEFT JOIN v$datafile f ON f.file# = d.file#
		LEFT JOIN v$tablespace t ON t.ts# = f.ts#
		WHERE s.recid = :bs_key
		ORDER BY d.file#`

	nlsQuery = `
		SELECT
			(SELECT value FROM v$nls_parameters WHERE parameter = 'NLS_LANGUAGE') AS language,
			(SELECT value FROM v$nls_parameters WHERE parameter = 'NLS_TERRITORY') AS territory,
			(SELECT value FROM nls_database_parameters WHERE parameter = 'NLS_CHARACTERSET') AS db_charset
		FROM dual`
)
