package oracle

// Discovery queries run when a profile is activated or tested.
const (
	databaseInfoQuery = `SELECT NAME, CDB, DATABASE_ROLE, LOG_MODE FROM v$database`

	// v$database has no CDB column before 12c
	databaseInfoLegacyQuery = `SELECT NAME, 'NO' AS CDB, DATABASE_ROLE, LOG_MODE FROM v$database`

	instanceInfoQuery = `SELECT VERSION, INSTANCE_NAME, HOST_NAME, PARALLEL FROM v$instance`

	patchQuery = `
		SELECT version, comments
		FROM dba_registry_history
		ORDER BY action_time DESC NULLS LAST
		FETCH FIRST 1 ROWS ONLY`

	applyStatusQuery = `SELECT recovery_mode FROM v$archive_dest_status WHERE recovery_mode != 'IDLE'`

	containerNameQuery = `SELECT SYS_CONTEXT('USERENV', 'CON_NAME') FROM dual`
)
