package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/utils"
)

var sessionCols = []string{"INST_ID", "SID", "SERIAL", "USERNAME", "STATUS", "TYPE", "PROGRAM", "SQL_ID", "SPID", "OWNER"}

func TestSessionService_SessionsAppliesFiltersAndNormalizes(t *testing.T) {
	withSystemSchemas(t, []string{"SYS"})
	deps, mock := newOracleDeps(t, true)
	svc := NewSessionService(deps)

	mock.ExpectQuery(q("s.sid IS NOT NULL")+`(?s).*`+q("AND s.inst_id = :inst_id")).
		WithArgs(sql.Named("inst_id", 2)).
		WillReturnRows(sqlmock.NewRows(sessionCols).
			AddRow(2, 101, 4455, "APP", "ACTIVE", "USER", "sqlplus", "9babjv8yq8ru3", "31337", "APP").
			AddRow(2, 102, 17, "BATCH", "ACTIVE", "USER", "java", nil, "31338", "BATCH"))

	sessions, err := svc.Sessions(context.Background(), readmodel.SessionFilters{}, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, 101, sessions[0].SID)
	assert.Equal(t, 4455, sessions[0].Serial)
	assert.Equal(t, 2, sessions[0].InstID)
	assert.Equal(t, "9babjv8yq8ru3", sessions[0].SQLID)
	assert.Equal(t, "31337", sessions[0].SPID)
}

func TestSessionService_SessionsSearch(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewSessionService(deps)

	mock.ExpectQuery(q("FROM gv$session s")).
		WillReturnRows(sqlmock.NewRows(sessionCols).
			AddRow(1, 101, 1, "APP", "ACTIVE", "USER", "sqlplus", "", "", "APP").
			AddRow(1, 102, 2, "BATCH", "ACTIVE", "USER", "java", "", "", "BATCH"))

	sessions, err := svc.Sessions(context.Background(), readmodel.SessionFilters{Search: "batch"}, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 102, sessions[0].SID)
}

func TestSessionService_SQLTextCached(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewSessionService(deps)

	mock.ExpectQuery(q("SELECT sql_fulltext FROM v$sql")).
		WithArgs(sql.Named("sql_id", "9babjv8yq8ru3")).
		WillReturnRows(sqlmock.NewRows([]string{"SQL_FULLTEXT"}).AddRow("SELECT * FROM dual"))

	for i := 0; i < 2; i++ {
		text, err := svc.SQLText(context.Background(), "9babjv8yq8ru3")
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM dual", text.SQLText)
	}
}

func TestSessionService_SQLTextErrors(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewSessionService(deps)

	_, err := svc.SQLText(context.Background(), "  ")
	assert.ErrorIs(t, err, utils.ErrValidation)

	mock.ExpectQuery(q("FROM v$sql")).WillReturnRows(sqlmock.NewRows([]string{"SQL_FULLTEXT"}))
	_, err = svc.SQLText(context.Background(), "gone")
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, "SQL not found in cursor cache", utils.Detail(err))
}

func TestSessionService_KillUsesInstanceOnRAC(t *testing.T) {
	deps, mock := newOracleDeps(t, true)
	svc := NewSessionService(deps)

	mock.ExpectExec(q("ALTER SYSTEM KILL SESSION '101,4455,@2' IMMEDIATE")).WillReturnResult(sqlmock.NewResult(0, 0))

	res, err := svc.Kill(context.Background(), 101, 4455, 2)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Session 101,4455 killed", res.Message)

	entries := deps.Activity.List()
	require.Len(t, entries, 1)
	assert.Equal(t, activity.CategorySession, entries[0].Category)
	assert.Equal(t, activity.StatusSuccess, entries[0].Status)
}

func TestSessionService_KillSingleInstance(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewSessionService(deps)

	mock.ExpectExec(q("ALTER SYSTEM KILL SESSION '101,4455' IMMEDIATE")).
		WillReturnError(assert.AnError)

	_, err := svc.Kill(context.Background(), 101, 4455, 2)
	require.Error(t, err)
	assert.Equal(t, activity.StatusFailed, deps.Activity.List()[0].Status)
}

func TestSessionService_BlockerNotFound(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewSessionService(deps)

	mock.ExpectQuery(q("WHERE s.sid = :sid AND s.inst_id = :inst_id")).
		WithArgs(sql.Named("sid", 55), sql.Named("inst_id", 1)).
		WillReturnRows(sqlmock.NewRows([]string{"SID"}))

	_, err := svc.Blocker(context.Background(), 55, 0)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSessionService_BlockerDetails(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewSessionService(deps)

	mock.ExpectQuery(q("WHERE s.sid = :sid AND s.inst_id = :inst_id")).
		WillReturnRows(sqlmock.NewRows([]string{"SID", "SERIAL", "SQL_ID"}).AddRow(55, 9, "abc"))
	mock.ExpectQuery(q("FROM gv$locked_object l")).
		WillReturnRows(sqlmock.NewRows([]string{"OWNER", "OBJECT_NAME"}).AddRow("APP", "ORDERS"))
	mock.ExpectQuery(q("WHERE blocking_session = :sid")).
		WillReturnRows(sqlmock.NewRows([]string{"SID"}).AddRow(77).AddRow(78))
	mock.ExpectQuery(q("FROM v$sql")).
		WillReturnRows(sqlmock.NewRows([]string{"SQL_FULLTEXT"}).AddRow("UPDATE orders SET x = 1"))

	out, err := svc.Blocker(context.Background(), 55, 1)
	require.NoError(t, err)
	assert.Len(t, out["locked_objects"], 1)
	assert.Len(t, out["waiters"], 2)
	assert.Equal(t, "UPDATE orders SET x = 1", out["sql_text"])
}

func TestSessionService_ObjectDDL(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewSessionService(deps)

	mock.ExpectQuery(q("DBMS_METADATA.GET_DDL")).
		WithArgs(sql.Named("obj_type", "PACKAGE_BODY"), sql.Named("name", "PKG_ORDERS"), sql.Named("owner", "APP")).
		WillReturnRows(sqlmock.NewRows([]string{"DDL"}).AddRow("CREATE OR REPLACE PACKAGE BODY ..."))

	ddl, err := svc.ObjectDDL(context.Background(), "package body", "app", "pkg_orders")
	require.NoError(t, err)
	assert.Contains(t, ddl, "PACKAGE BODY")

	_, err = svc.ObjectDDL(context.Background(), "TABLE", "", "X")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestSessionService_KillCommandsFromAliasedRows(t *testing.T) {
	svc := NewSessionService(noActiveDeps())
	cmds := svc.KillCommands([]map[string]any{
		{"sid": 10, "serial#": 20, "inst_id": 2, "spid": "4242"},
		{"SID": 11, "SERIAL": 21},
	})
	require.Len(t, cmds, 2)
	assert.Equal(t, "alter system kill session '10,20,@2' immediate;", cmds[0].Oracle)
	assert.Equal(t, "kill -9 4242", cmds[0].OS)
	assert.Equal(t, "alter system kill session '11,21,@1' immediate;", cmds[1].Oracle)
}

func TestSessionService_NoActiveConnection(t *testing.T) {
	svc := NewSessionService(noActiveDeps())
	_, err := svc.Sessions(context.Background(), readmodel.SessionFilters{}, 0)
	assert.ErrorIs(t, err, utils.ErrNoActiveConnection)
	_, err = svc.Kill(context.Background(), 1, 2, 0)
	assert.ErrorIs(t, err, utils.ErrNoActiveConnection)
}
