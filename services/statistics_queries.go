package services

const (
	hasColumnQuery = `SELECT 1 FROM dba_tab_columns WHERE table_name = :table_name AND column_name = :column_name AND ROWNUM = 1`

	// staleStatsQuery takes the filter conditions.
	staleStatsQuery = `
		SELECT owner, table_name, partition_name, subpartition_name, num_rows,
		       TO_CHAR(last_analyzed, 'YYYY-MM-DD HH24:MI:SS') AS last_analyzed,
		       stale_stats, %s AS type
		FROM dba_tab_statistics
		WHERE stale_stats = 'YES'%s
		ORDER BY last_analyzed ASC NULLS FIRST`

	// dmlChangesQuery takes the total expression and the filter conditions.
	dmlChangesQuery = `
		SELECT table_owner AS owner, table_name, partition_name, inserts, updates, deletes,
		       TO_CHAR(timestamp, 'YYYY-MM-DD HH24:MI:SS') AS last_flush,
		       %s AS total_modifications, truncated, drop_segments
		FROM dba_tab_modifications
		WHERE 1 = 1%s
		ORDER BY inserts + updates + deletes DESC`

	statsSchemasQuery = `SELECT username FROM dba_users%s ORDER BY username`

	statsTablesQuery = `SELECT table_name FROM dba_tables WHERE owner = :owner ORDER BY table_name`
)
