package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsService_AlertUsesDiagView(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewLogsService(deps)

	mock.ExpectQuery(q("FROM v$diag_alert_ext")).
		WithArgs(sql.Named("lim", DefaultAlertLimit)).
		WillReturnRows(sqlmock.NewRows([]string{"TIMESTAMP", "MESSAGE_TEXT", "MESSAGE_LEVEL", "COMPONENT_ID"}).
			AddRow("17-OCT-2026 22:01:13", "Thread 1 advanced to log sequence 812", 16, "rdbms"))

	rows, err := svc.Alert(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Thread 1 advanced to log sequence 812", rows[0]["message_text"])
}

func TestLogsService_AlertFallbacks(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewLogsService(deps)

	mock.ExpectQuery(q("FROM v$diag_alert_ext")).WillReturnError(errors.New("ORA-00942: table or view does not exist"))
	mock.ExpectQuery(q("FROM v$alert_log")).
		WithArgs(sql.Named("lim", 5)).
		WillReturnRows(sqlmock.NewRows([]string{"TIMESTAMP", "MESSAGE_TEXT", "MESSAGE_LEVEL", "COMPONENT_ID"}).
			AddRow("17-OCT-2026 22:01:13", "Completed checkpoint", nil, nil))

	rows, err := svc.Alert(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Completed checkpoint", rows[0]["message_text"])

	mock.ExpectQuery(q("FROM v$diag_alert_ext")).WillReturnError(errors.New("ORA-00942: table or view does not exist"))
	mock.ExpectQuery(q("FROM v$alert_log")).WillReturnError(errors.New("ORA-00942"))

	rows, err = svc.Alert(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0]["timestamp"])
	assert.Contains(t, rows[0]["message_text"], "Error accessing alert log views: ")
	assert.Contains(t, rows[0]["message_text"], "ORA-00942: table or view does not exist")
}

func TestLogsService_OutstandingAndParameters(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewLogsService(deps)

	mock.ExpectQuery(q("FROM dba_outstanding_alerts")).WillReturnError(assert.AnError)
	alerts, err := svc.Outstanding(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)

	mock.ExpectQuery(q("FROM v$parameter")).
		WillReturnRows(sqlmock.NewRows([]string{"NUM", "NAME", "VALUE"}).AddRow(1, "open_cursors", "300"))
	params, err := svc.Parameters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "open_cursors", params[0]["name"])

	mock.ExpectQuery(q("FROM v$parameter")).WillReturnError(assert.AnError)
	_, err = svc.Parameters(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
