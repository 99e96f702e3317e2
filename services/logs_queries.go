package services

const (
	alertLogQuery = `
		SELECT
			TO_CHAR(originating_timestamp, 'DD-MON-YYYY HH24:MI:SS') AS timestamp,
			message_text,
			message_level,
			component_id
		FROM v$diag_alert_ext
		ORDER BY originating_timestamp DESC
		FETCH FIRST :lim ROWS ONLY`

	alertLogLegacyQuery = `
		SELECT
			TO_CHAR(timestamp, 'DD-MON-YYYY HH24:MI:SS') AS timestamp,
			message_text,
			NULL AS message_level,
			NULL AS component_id
		FROM v$alert_log
		ORDER BY timestamp DESC
		FETCH FIRST :lim ROWS ONLY`

	parametersQuery = `
		SELECT num, name, value, display_value, isdefault, issys_modifiable, ismodified, description
		FROM v$parameter
		ORDER BY name`

	outstandingAlertsQuery = `
		SELECT
			reason_id AS id,
			TO_CHAR(time_suggested, 'DD-MON HH24:MI') AS creation_time,
			object_type AS type,
			message_level AS "LEVEL",
			reason AS message,
			suggested_action
		FROM dba_outstanding_alerts
		ORDER BY time_suggested DESC`
)
