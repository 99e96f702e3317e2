package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oraconsoleapi/models"
	"oraconsoleapi/utils"
)

func TestRedoService_HistoryDefaultsAndTrims(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewRedoService(deps)

	mock.ExpectQuery(q("AS h23")+`(?s).*`+q("AND thread# = :thread")).
		WithArgs(sql.Named("days", DefaultHistoryDays), sql.Named("thread", 2)).
		WillReturnRows(sqlmock.NewRows([]string{"DG_DATE", "H00", "H01"}).AddRow("Oct 17", "    3", "   12"))

	rows, err := svc.History(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "3", rows[0]["h00"])
	assert.Equal(t, "12", rows[0]["h01"])
	assert.Equal(t, "Oct 17", rows[0]["dg_date"])
}

func TestRedoService_Threads(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewRedoService(deps)

	mock.ExpectQuery(q("SELECT DISTINCT thread#")).
		WillReturnRows(sqlmock.NewRows([]string{"THREAD#"}).AddRow(1).AddRow(2))

	threads, err := svc.Threads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, threads)
}

func TestRedoService_OptionalViewsDegradeToEmpty(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewRedoService(deps)

	mock.ExpectQuery(q("FROM v$standby_log")).WillReturnError(assert.AnError)
	mock.ExpectQuery(q("FROM v$archived_log")).WillReturnError(assert.AnError)
	mock.ExpectQuery(q("FROM v$logfile")).WillReturnError(assert.AnError)
	mock.ExpectQuery(q("FROM v$sysstat")).WillReturnError(assert.AnError)

	standby, err := svc.StandbyLogs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, standby)
	archives, err := svc.ArchivedLogs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, archives)
	members, err := svc.Members(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, members)
	buf, err := svc.LogBuffer(context.Background())
	require.NoError(t, err)
	assert.Empty(t, buf)
}

func TestRedoService_LogBuffer(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewRedoService(deps)

	mock.ExpectQuery(q("FROM v$sysstat")).
		WillReturnRows(sqlmock.NewRows([]string{"NAME", "VALUE"}).AddRow("redo entries", 1200).AddRow("redo log space requests", 3))
	mock.ExpectQuery(q("name = 'log_buffer'")).
		WillReturnRows(sqlmock.NewRows([]string{"V"}).AddRow("15.25"))

	buf, err := svc.LogBuffer(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1200, buf["redo entries"])
	assert.EqualValues(t, 3, buf["redo log space requests"])
	assert.Equal(t, "15.25", buf["log_buffer_size"])
}

func TestRedoService_Management(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewRedoService(deps)

	mock.ExpectQuery(q("'log_archive_dest_1', 'log_archive_format'")).
		WillReturnRows(sqlmock.NewRows([]string{"NAME", "VALUE"}).
			AddRow("log_archive_dest_1", "LOCATION=USE_DB_RECOVERY_FILE_DEST").
			AddRow("log_archive_format", "%t_%s_%r.arc"))
	mock.ExpectQuery(q("AS db_log_mode")).
		WillReturnRows(sqlmock.NewRows([]string{"DB_LOG_MODE", "CURRENT_SEQ"}).AddRow("ARCHIVELOG", 812))

	out, err := svc.Management(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ARCHIVELOG", out["db_log_mode"])
	assert.Equal(t, "%t_%s_%r.arc", out["log_archive_format"])
	assert.EqualValues(t, 812, out["current_seq"])
}

func TestRedoService_SwitchFallsBack(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewRedoService(deps)

	mock.ExpectExec(q("ALTER SYSTEM ARCHIVE LOG CURRENT")).WillReturnError(assert.AnError)
	mock.ExpectExec(q("ALTER SYSTEM SWITCH LOGFILE")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, svc.Switch(context.Background()))
}

func TestRedoService_GroupAndMemberActions(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	svc := NewRedoService(deps)
	ctx := context.Background()

	mock.ExpectExec(q("ALTER DATABASE ADD LOGFILE THREAD 1 SIZE 200M")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, svc.AddGroup(ctx, models.RedoGroupAddRequest{SizeMB: 200}))

	mock.ExpectExec(q("ALTER DATABASE DROP LOGFILE GROUP 4")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, svc.DropGroup(ctx, models.RedoGroupDropRequest{GroupID: 4}))

	mock.ExpectExec(q("ALTER DATABASE ADD LOGFILE MEMBER '/u03/redo04b.log' TO GROUP 4")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, svc.AddMember(ctx, models.RedoMemberAddRequest{GroupID: 4, MemberPath: "/u03/redo04b.log"}))

	mock.ExpectExec(q("ALTER DATABASE DROP LOGFILE MEMBER '/u03/redo04b.log'")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, svc.DropMember(ctx, models.RedoMemberDropRequest{MemberPath: "/u03/redo04b.log"}))

	assert.ErrorIs(t, svc.DropMember(ctx, models.RedoMemberDropRequest{}), utils.ErrValidation)
	assert.ErrorIs(t, svc.AddGroup(ctx, models.RedoGroupAddRequest{}), utils.ErrValidation)
}
