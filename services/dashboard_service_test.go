package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Metrics(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewDashboardService(deps)

	mock.ExpectQuery(q("SELECT COUNT(*) FROM v$session")).WillReturnRows(sqlmock.NewRows([]string{"C"}).AddRow("142"))
	mock.ExpectQuery(q("status = 'ACTIVE' AND type != 'BACKGROUND'")).WillReturnRows(sqlmock.NewRows([]string{"C"}).AddRow("9"))
	mock.ExpectQuery(q("FROM v$sgainfo")).
		WillReturnRows(sqlmock.NewRows([]string{"NAME", "BYTES"}).AddRow("Buffer Cache Size", 1610612736).AddRow("Shared Pool Size", 536870912))
	mock.ExpectQuery(q("FROM dba_objects")).
		WillReturnRows(sqlmock.NewRows([]string{"STATUS", "CNT"}).AddRow("VALID", 5120).AddRow("INVALID", 4))
	mock.ExpectQuery(q("'opened cursors current'")).WillReturnRows(sqlmock.NewRows([]string{"S"}).AddRow("311"))
	mock.ExpectQuery(q("FROM dba_triggers")).
		WillReturnRows(sqlmock.NewRows([]string{"STATUS", "CNT"}).AddRow("ENABLED", 40).AddRow("DISABLED", 2))

	m, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 142, m.Sessions.Total)
	assert.Equal(t, 9, m.Sessions.Active)
	assert.EqualValues(t, 1610612736, m.SGA["Buffer Cache Size"])
	assert.Equal(t, map[string]int{"VALID": 5120, "INVALID": 4}, m.Health.Objects)
	assert.Equal(t, 311, m.Health.Cursors)
	assert.Equal(t, 2, m.Health.Triggers["DISABLED"])
}

func TestDashboardService_Healthcheck(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewDashboardService(deps)

	mock.ExpectQuery(q("FROM v$parameter WHERE name IN (:p0, :p1, :p2, :p3, :p4)")).
		WillReturnRows(sqlmock.NewRows([]string{"NAME", "VALUE", "ISDEFAULT"}).
			AddRow("open_cursors", "300", "TRUE").
			AddRow("cursor_sharing", "EXACT", "TRUE"))
	mock.ExpectQuery(q("FROM dba_profiles")).
		WillReturnRows(sqlmock.NewRows([]string{"PROFILE", "RESOURCE_NAME", "LIMIT"}).
			AddRow("DEFAULT", "FAILED_LOGIN_ATTEMPTS", "UNLIMITED").
			AddRow("DEFAULT", "PASSWORD_LIFE_TIME", "UNLIMITED"))
	mock.ExpectQuery(q("name = 'audit_trail'")).WillReturnRows(sqlmock.NewRows([]string{"VALUE"}).AddRow("NONE"))

	findings, err := svc.Healthcheck(context.Background())
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "open_cursors", findings[0].Item)
	assert.Equal(t, "Warning", findings[0].Status)
	assert.Equal(t, "300", findings[0].Current)
}

func TestDashboardService_Tablespaces(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewDashboardService(deps)

	mock.ExpectQuery(q("ORDER BY used_pct DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"TABLESPACE_NAME", "USED_PCT"}).AddRow("SYSAUX", 97.2).AddRow("USERS", 41.0))
	rows, err := svc.Tablespaces(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "SYSAUX", rows[0]["tablespace_name"])
}
