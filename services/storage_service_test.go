package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/utils"
)

func TestStorageService_TablespaceMapComputesMetrics(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewStorageService(deps)

	cols := []string{"FILE_ID", "BLOCK_ID", "BLOCKS", "SIZE_KB", "STATUS", "OWNER", "SEGMENT_NAME", "SEGMENT_TYPE", "PARTITION_NAME"}
	mock.ExpectQuery(q("FROM dba_extents")+`(?s).*`+q("AND file_id = :file_used")).
		WithArgs(sql.Named("ts_used", "USERS"), sql.Named("ts_free", "USERS"), sql.Named("file_used", 4), sql.Named("file_free", 4)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(4, 128, 8, 64, "USED", "APP", "ORDERS", "TABLE", nil).
			AddRow(4, 136, 8, 64, "USED", "APP", "ORDERS_PK", "INDEX", nil).
			AddRow(4, 144, 16, 128, "FREE", nil, nil, nil, nil))

	m, err := svc.TablespaceMap(context.Background(), "users", 4)
	require.NoError(t, err)
	assert.Equal(t, "USERS", m.Tablespace)
	require.Len(t, m.Extents, 3)
	assert.Equal(t, readmodel.ExtentFree, m.Extents[2].Status)
	assert.Equal(t, int64(256), m.Metrics.TotalKB)
	assert.Equal(t, int64(128), m.Metrics.UsedKB)
	assert.Equal(t, 50.0, m.Metrics.UsedPct)
}

func TestStorageService_TablespaceMapRequiresName(t *testing.T) {
	svc := NewStorageService(noActiveDeps())
	_, err := svc.TablespaceMap(context.Background(), " ", 0)
	assert.ErrorIs(t, err, utils.ErrValidation)
	_, err = svc.TopSegments(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestStorageService_CheckpointEmpty(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewStorageService(deps)

	mock.ExpectQuery(q("FROM v$instance_recovery")).WillReturnRows(sqlmock.NewRows([]string{"TARGET_MTTR"}))
	cp, err := svc.Checkpoint(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cp)
	assert.NotNil(t, cp)
}

func TestStorageService_Actions(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewStorageService(deps)

	mock.ExpectExec(q("ALTER DATABASE DATAFILE 4 RESIZE 2048M")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, svc.ResizeDatafile(context.Background(), models.DatafileResizeRequest{FileID: 4, NewSizeMB: 2048}))

	mock.ExpectExec(q(`ALTER TABLESPACE "USERS" ADD DATAFILE '/u02/oradata/users02.dbf' SIZE 512M`)).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, svc.AddDatafile(context.Background(), models.DatafileAddRequest{TablespaceName: "USERS", FileName: "/u02/oradata/users02.dbf", SizeMB: 512}))

	mock.ExpectExec(q("ALTER SYSTEM CHECKPOINT")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, svc.ForceCheckpoint(context.Background()))

	err := svc.ResizeDatafile(context.Background(), models.DatafileResizeRequest{FileID: 0, NewSizeMB: 10})
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Len(t, deps.Activity.List(), 3)
}

func TestStorageService_ReorgSQL(t *testing.T) {
	svc := NewStorageService(noActiveDeps())
	stmt, err := svc.ReorgSQL(readmodel.ExtentBlock{Status: readmodel.ExtentUsed, Owner: "APP", SegmentName: "ORDERS_PK", SegmentType: "INDEX"}, "USERS2")
	require.NoError(t, err)
	assert.Equal(t, `ALTER INDEX "APP"."ORDERS_PK" REBUILD TABLESPACE "USERS2" ONLINE;`, stmt)

	_, err = svc.ReorgSQL(readmodel.ExtentBlock{Status: readmodel.ExtentFree}, "USERS2")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestStorageService_Charts(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewStorageService(deps)

	mock.ExpectQuery(q("FROM v$recovery_file_dest")).
		WillReturnRows(sqlmock.NewRows([]string{"NAME", "LIMIT_MB", "USED_MB", "RECLAIMABLE_MB", "NUMBER_OF_FILES"}).
			AddRow("+FRA", 10240, 7680, 1024, 42))
	mock.ExpectQuery(q("FROM ts_usage u")).
		WillReturnRows(sqlmock.NewRows([]string{"TOTAL_MB", "USED_MB", "FREE_MB"}).AddRow(5000, 3500, 1500))
	mock.ExpectQuery(q("FROM v$sgastat")).
		WillReturnRows(sqlmock.NewRows([]string{"NAME", "MB"}).
			AddRow("buffer_cache", 2048).AddRow("shared pool", 768).AddRow("fixed_sga", 0))
	mock.ExpectQuery(q("SUM(value) / 1024 / 1024) AS mb FROM v$sga")).
		WillReturnRows(sqlmock.NewRows([]string{"MB"}).AddRow(3072))
	mock.ExpectQuery(q("FROM v$pgastat")).WillReturnError(errors.New("ORA-00942: table or view does not exist"))
	mock.ExpectQuery(q("contents = 'UNDO'")).
		WillReturnRows(sqlmock.NewRows([]string{"TABLESPACE_NAME", "TOTAL_MB", "USED_MB", "FREE_MB"}).AddRow("UNDOTBS1", 1000, 250, 750))
	mock.ExpectQuery(q("FROM v$temp_tablespace_utilization")).
		WillReturnRows(sqlmock.NewRows([]string{"TABLESPACE_NAME", "TOTAL_MB", "USED_MB", "FREE_MB"}))
	mock.ExpectQuery(q("FROM dba_temp_files")).
		WillReturnRows(sqlmock.NewRows([]string{"TABLESPACE_NAME", "TOTAL_MB"}).AddRow("TEMP", 512))
	mock.ExpectQuery(q("ROWNUM <= 10")).
		WillReturnRows(sqlmock.NewRows([]string{"NAME", "MB"}).AddRow("SYSAUX", 1200).AddRow("USERS", 800))

	charts, err := svc.Charts(context.Background())
	require.NoError(t, err)

	require.NotNil(t, charts.FRA)
	assert.Equal(t, "+FRA", charts.FRA.Name)
	assert.Equal(t, 2560.0, charts.FRA.FreeMB)
	assert.Equal(t, 75.0, charts.FRA.UsedPct)
	assert.Equal(t, 42, charts.FRA.Files)

	require.NotNil(t, charts.Datafiles)
	assert.Equal(t, SpaceUsage{TotalMB: 5000, UsedMB: 3500, FreeMB: 1500}, *charts.Datafiles)

	assert.Equal(t, []ChartPoint{{Name: "buffer_cache", MB: 2048}, {Name: "shared pool", MB: 768}}, charts.SGA)
	assert.Equal(t, 3072.0, charts.SGATotalMB)
	assert.NotNil(t, charts.PGA)
	assert.Empty(t, charts.PGA)
	assert.Equal(t, []SpaceUsage{{Name: "UNDOTBS1", TotalMB: 1000, UsedMB: 250, FreeMB: 750}}, charts.Undo)
	assert.Equal(t, []SpaceUsage{{Name: "TEMP", TotalMB: 512, FreeMB: 512}}, charts.Temp)
	require.Len(t, charts.TopTablespaces, 2)
	assert.Equal(t, "SYSAUX", charts.TopTablespaces[0].Name)
}

func TestStorageService_ChartsWithoutFRA(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewStorageService(deps)
	mock.MatchExpectationsInOrder(false)

	empty := func(cols ...string) *sqlmock.Rows { return sqlmock.NewRows(cols) }
	mock.ExpectQuery(q("FROM v$recovery_file_dest")).WillReturnRows(empty("NAME", "LIMIT_MB", "USED_MB"))
	mock.ExpectQuery(q("FROM ts_usage u")).WillReturnRows(empty("TOTAL_MB"))
	mock.ExpectQuery(q("FROM v$sgastat")).WillReturnRows(empty("NAME", "MB"))
	mock.ExpectQuery(q("AS mb FROM v$sga")).WillReturnRows(empty("MB"))
	mock.ExpectQuery(q("FROM v$pgastat")).WillReturnRows(empty("NAME", "MB"))
	mock.ExpectQuery(q("contents = 'UNDO'")).WillReturnRows(empty("TABLESPACE_NAME"))
	mock.ExpectQuery(q("FROM v$temp_tablespace_utilization")).
		WillReturnRows(sqlmock.NewRows([]string{"TABLESPACE_NAME", "TOTAL_MB", "USED_MB", "FREE_MB"}).AddRow("TEMP", 512, 128, 384))
	mock.ExpectQuery(q("ROWNUM <= 10")).WillReturnRows(empty("NAME", "MB"))

	charts, err := svc.Charts(context.Background())
	require.NoError(t, err)
	assert.Nil(t, charts.FRA)
	assert.Nil(t, charts.Datafiles)
	assert.Equal(t, []SpaceUsage{{Name: "TEMP", TotalMB: 512, UsedMB: 128, FreeMB: 384}}, charts.Temp)

	_, err = NewStorageService(noActiveDeps()).Charts(context.Background())
	assert.ErrorIs(t, err, utils.ErrNoActiveConnection)
}
