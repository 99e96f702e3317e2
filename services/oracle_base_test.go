package services

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oraconsoleapi/config"
	"oraconsoleapi/models"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/utils"
)

type fakeProvider struct {
	db   *sql.DB
	conn *models.DatabaseConnection
	err  error
}

func (p fakeProvider) Active(ctx context.Context) (*sql.DB, *models.DatabaseConnection, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	return p.db, p.conn, nil
}

// newOracleDeps returns deps backed by sqlmock and an active profile with id 7.
func newOracleDeps(t *testing.T, rac bool) (OracleDeps, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	conn := &models.DatabaseConnection{ID: 7, Name: "prod-east", IsActive: true, IsRAC: rac}
	return OracleDeps{
		Provider: fakeProvider{db: db, conn: conn},
		Activity: activity.NewLog(20, nil),
	}, mock
}

func noActiveDeps() OracleDeps {
	return OracleDeps{Provider: fakeProvider{err: utils.ErrNoActiveConnection}, Activity: activity.NewLog(5, nil)}
}

func q(s string) string { return regexp.QuoteMeta(s) }

func withSystemSchemas(t *testing.T, schemas []string) {
	prev := config.Cfg.SystemSchemas
	config.Cfg.SystemSchemas = schemas
	t.Cleanup(func() { config.Cfg.SystemSchemas = prev })
}

func TestNamedList(t *testing.T) {
	list, args := namedList("sys", []string{"SYS", "SYSTEM"})
	assert.Equal(t, ":sys0, :sys1", list)
	assert.Equal(t, []any{sql.Named("sys0", "SYS"), sql.Named("sys1", "SYSTEM")}, args)
}

func TestExcludedSchemas_MergesConfigAndMaintained(t *testing.T) {
	withSystemSchemas(t, []string{"SYSTEM", "sys"})
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(q("oracle_maintained = 'Y'")).
		WillReturnRows(sqlmock.NewRows([]string{"USERNAME"}).AddRow("SYS").AddRow("XDB").AddRow("AUDSYS"))

	assert.Equal(t, []string{"AUDSYS", "SYS", "SYSTEM", "XDB"}, excludedSchemas(context.Background(), db))
	assert.Equal(t, []string{"SYS", "SYSTEM"}, excludedSchemas(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOracleBase_ActRecordsActivity(t *testing.T) {
	deps, mock := newOracleDeps(t, false)
	b := oracleBase{deps}

	mock.ExpectExec(q("ALTER SYSTEM CHECKPOINT")).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, b.exec(context.Background(), activity.CategoryStorage, "ALTER SYSTEM CHECKPOINT"))

	mock.ExpectExec(q("ALTER SYSTEM SWITCH LOGFILE")).WillReturnError(assert.AnError)
	require.ErrorIs(t, b.exec(context.Background(), activity.CategoryRedo, "ALTER SYSTEM SWITCH LOGFILE"), assert.AnError)

	entries := deps.Activity.List()
	require.Len(t, entries, 2)
	assert.Equal(t, activity.StatusFailed, entries[0].Status)
	assert.Equal(t, activity.StatusSuccess, entries[1].Status)
	assert.Equal(t, uint(7), entries[1].ConnectionID)
}

func TestOracleBase_NoActiveConnection(t *testing.T) {
	b := oracleBase{noActiveDeps()}
	_, err := b.rows(context.Background(), "x", "SELECT 1 FROM dual")
	assert.ErrorIs(t, err, utils.ErrNoActiveConnection)
	_, err = b.rowsOrEmpty(context.Background(), "x", "SELECT 1 FROM dual")
	assert.ErrorIs(t, err, utils.ErrNoActiveConnection)
	assert.ErrorIs(t, b.exec(context.Background(), "x", "BEGIN NULL; END;"), utils.ErrNoActiveConnection)
}
