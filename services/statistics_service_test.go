package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/utils"
)

func TestStatisticsService_StaleExcludesSystemSchemas(t *testing.T) {
	withSystemSchemas(t, []string{"SYS"})
	deps, mock := newOracleDeps(t, false)
	svc := NewStatisticsService(deps)

	mock.ExpectExec(q("FLUSH_DATABASE_MONITORING_INFO")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(q("FROM dba_tab_columns")).
		WithArgs(sql.Named("table_name", "DBA_TAB_STATISTICS"), sql.Named("column_name", "OBJECT_TYPE")).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(q("oracle_maintained = 'Y'")).
		WillReturnRows(sqlmock.NewRows([]string{"USERNAME"}).AddRow("XDB"))
	mock.ExpectQuery(q("object_type AS type")+`(?s).*`+q("AND owner NOT IN (:sys0, :sys1)")+`(?s).*`+q("AND table_name LIKE :tab")).
		WithArgs(sql.Named("sys0", "SYS"), sql.Named("sys1", "XDB"), sql.Named("tab", "%ORD%")).
		WillReturnRows(sqlmock.NewRows([]string{"OWNER", "TABLE_NAME", "STALE_STATS"}).AddRow("APP", "ORDERS", "YES"))

	rows, err := svc.Stale(context.Background(), StatsFilter{TableName: "ord", ExcludeSystem: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ORDERS", rows[0]["table_name"])
}

func TestStatisticsService_DMLFallsBackWithoutTotalColumn(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewStatisticsService(deps)

	mock.ExpectExec(q("FLUSH_DATABASE_MONITORING_INFO")).WillReturnError(assert.AnError)
	mock.ExpectQuery(q("FROM dba_tab_columns")).WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectQuery(q("(inserts + updates + deletes) AS total_modifications")+`(?s).*`+q("AND table_owner = :owner")).
		WithArgs(sql.Named("owner", "APP")).
		WillReturnRows(sqlmock.NewRows([]string{"OWNER", "TABLE_NAME", "TOTAL_MODIFICATIONS"}).AddRow("APP", "ORDERS", 42))

	rows, err := svc.DMLChanges(context.Background(), StatsFilter{Owner: "app", ExcludeSystem: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 42, rows[0]["total_modifications"])
}

func TestStatisticsService_Gather(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewStatisticsService(deps)

	mock.ExpectExec(q("BEGIN DBMS_STATS.GATHER_TABLE_STATS(ownname => :owner, tabname => :table_name")).
		WithArgs(sql.Named("owner", "APP"), sql.Named("table_name", "ORDERS"), sql.Named("est_pct", 10.0)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	res, err := svc.Gather(context.Background(), scriptgen.GatherStatsOptions{Owner: "app", Table: "orders", EstimatePercent: "10"})
	require.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "Statistics gathered for APP.ORDERS (TABLE)", res.Message)

	_, err = svc.Gather(context.Background(), scriptgen.GatherStatsOptions{Level: "SCHEMA"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestStatisticsService_GatherDatabase(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewStatisticsService(deps)

	mock.ExpectExec(q("BEGIN DBMS_STATS.GATHER_DATABASE_STATS(")).WillReturnResult(sqlmock.NewResult(0, 0))
	res, err := svc.Gather(context.Background(), scriptgen.GatherStatsOptions{Level: "DATABASE"})
	require.NoError(t, err)
	assert.Equal(t, "Statistics gathered for DATABASE (DATABASE)", res.Message)
}

func TestStatisticsService_LockAndFlush(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewStatisticsService(deps)

	mock.ExpectExec(q("UNLOCK_TABLE_STATS(:owner, :table_name)")).
		WithArgs(sql.Named("owner", "APP"), sql.Named("table_name", "ORDERS")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	res, err := svc.Lock(context.Background(), models.LockStatsRequest{Owner: "app", TableName: "orders", Action: "UNLOCK"})
	require.NoError(t, err)
	assert.Equal(t, "Statistics unlocked for APP.ORDERS", res.Message)

	mock.ExpectExec(q("FLUSH_DATABASE_MONITORING_INFO")).WillReturnResult(sqlmock.NewResult(0, 0))
	res, err = svc.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Database monitoring information flushed successfully", res.Message)
}

func TestStatisticsService_SchemasAndTables(t *testing.T) {
	withSystemSchemas(t, []string{"SYS"})
	deps, mock := newOracleDeps(t, false)
	svc := NewStatisticsService(deps)

	mock.ExpectQuery(q("oracle_maintained = 'Y'")).WillReturnError(assert.AnError)
	mock.ExpectQuery(q("FROM dba_users WHERE username NOT IN (:sys0)")).
		WillReturnRows(sqlmock.NewRows([]string{"USERNAME"}).AddRow("APP").AddRow("HR"))
	schemas, err := svc.Schemas(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"APP", "HR"}, schemas)

	mock.ExpectQuery(q("FROM dba_tables WHERE owner = :owner")).
		WithArgs(sql.Named("owner", "HR")).
		WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME"}).AddRow("EMPLOYEES"))
	tables, err := svc.Tables(context.Background(), "hr")
	require.NoError(t, err)
	assert.Equal(t, []string{"EMPLOYEES"}, tables)

	_, err = svc.Tables(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrValidation)
}
