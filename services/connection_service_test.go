package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"oraconsoleapi/models"
	"oraconsoleapi/repository"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupStore(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.DatabaseConnection{}, &models.UserPreference{}, &models.WorkloadSnapshot{}))
	return db
}

type connFixture struct {
	svc    ConnectionService
	store  *gorm.DB
	cipher *utils.Cipher
	state  *ConnectionState
	opened int
	dbs    []*sql.DB
}

func newConnFixture(t *testing.T, discover Discoverer) *connFixture {
	store := setupStore(t)
	cipher, err := utils.NewCipher("test-key")
	require.NoError(t, err)
	f := &connFixture{store: store, cipher: cipher, state: NewConnectionState()}
	gw := oracle.NewGateway(oracle.GatewayConfig{
		ConnectTimeout: time.Second,
		Open: func(dsn string) (*sql.DB, error) {
			f.opened++
			db, _, err := sqlmock.New()
			f.dbs = append(f.dbs, db)
			return db, err
		},
	})
	t.Cleanup(func() { gw.Close() })
	f.svc = NewConnectionService(ConnectionServiceDeps{
		Repo:        repository.NewConnectionRepositoryWithDB(store),
		Preferences: repository.NewPreferenceRepositoryWithDB(store),
		Snapshots:   repository.NewSnapshotRepositoryWithDB(store),
		Gateway:     gw,
		Cipher:      cipher,
		State:       f.state,
		Activity:    activity.NewLog(10, nil),
		Discover:    discover,
		Tx:          repository.NewBaseRepositoryWithDB(store),
	})
	return f
}

func okDiscover(ctx context.Context, db *sql.DB) (*oracle.Discovery, error) {
	return &oracle.Discovery{Name: "ORCL", DBType: "CDB", Role: "PRIMARY", Version: "19.0.0.0.0", IsRAC: true, Patch: "N/A", ApplyStatus: "N/A"}, nil
}

func sampleRequest() models.ConnectionRequest {
	return models.ConnectionRequest{
		Name: "prod-east", Host: "db01.example.com", Port: "1521", Service: "ORCLPDB1",
		Username: "system", Password: "manager", Type: "prod",
	}
}

func TestConnectionService_CreateEncryptsAndMasks(t *testing.T) {
	f := newConnFixture(t, okDiscover)

	conn, err := f.svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.NotZero(t, conn.ID)
	assert.False(t, conn.IsActive)
	assert.Equal(t, models.MaskedPassword, conn.Password)
	assert.Equal(t, "PROD", conn.Type)
	assert.Equal(t, models.ModeBasic, conn.ConnectionMode)
	assert.Equal(t, "(DESCRIPTION=(ADDRESS=(PROTOCOL=TCP)(HOST=db01.example.com)(PORT=1521))(CONNECT_DATA=(SERVICE_NAME=ORCLPDB1)))", conn.ConnectString)

	var stored models.DatabaseConnection
	require.NoError(t, f.store.First(&stored, conn.ID).Error)
	assert.NotEqual(t, "manager", stored.Password)
	plain, err := f.cipher.Decrypt(stored.Password)
	require.NoError(t, err)
	assert.Equal(t, "manager", plain)

	list, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.MaskedPassword, list[0].Password)
}

func TestConnectionService_Get(t *testing.T) {
	f := newConnFixture(t, okDiscover)
	created, err := f.svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	conn, err := f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, conn.Name)
	assert.Equal(t, models.MaskedPassword, conn.Password)
	assert.Equal(t, string(PhaseOffline), conn.Status)

	_, err = f.svc.Activate(context.Background(), created.ID)
	require.NoError(t, err)
	conn, err = f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(PhaseConnected), conn.Status)

	_, err = f.svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestConnectionService_CreateValidation(t *testing.T) {
	f := newConnFixture(t, okDiscover)
	req := sampleRequest()
	req.Host = ""
	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrValidation)

	req = sampleRequest()
	req.Type = "QA"
	_, err = f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestConnectionService_UpdateKeepsPasswordWhenMasked(t *testing.T) {
	f := newConnFixture(t, okDiscover)
	conn, err := f.svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	req := sampleRequest()
	req.Name = "prod-west"
	req.Password = models.MaskedPassword
	require.NoError(t, f.svc.Update(context.Background(), conn.ID, req))

	var stored models.DatabaseConnection
	require.NoError(t, f.store.First(&stored, conn.ID).Error)
	assert.Equal(t, "prod-west", stored.Name)
	plain, err := f.cipher.Decrypt(stored.Password)
	require.NoError(t, err)
	assert.Equal(t, "manager", plain)

	req.Password = "changed"
	require.NoError(t, f.svc.Update(context.Background(), conn.ID, req))
	require.NoError(t, f.store.First(&stored, conn.ID).Error)
	plain, _ = f.cipher.Decrypt(stored.Password)
	assert.Equal(t, "changed", plain)

	err = f.svc.Update(context.Background(), 999, req)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestConnectionService_ActivateIsExclusiveAndStoresDiscovery(t *testing.T) {
	f := newConnFixture(t, okDiscover)
	a, err := f.svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)
	req := sampleRequest()
	req.Name = "dev"
	req.Type = "DEV"
	b, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	d, err := f.svc.Activate(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORCL", d.Name)
	assert.Equal(t, PhaseConnected, f.svc.Status().Phase)

	_, err = f.svc.Activate(context.Background(), b.ID)
	require.NoError(t, err)

	active, err := f.svc.GetActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, b.ID, active.ID)
	assert.Equal(t, "19.0.0.0.0", active.Version)
	assert.True(t, active.IsRAC)
	assert.NotNil(t, active.LastConnected)

	var n int64
	f.store.Model(&models.DatabaseConnection{}).Where("is_active = ?", true).Count(&n)
	assert.EqualValues(t, 1, n)

	db, conn, err := f.svc.Active(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, db)
	assert.Equal(t, b.ID, conn.ID)

	// The pool of the previously active profile is released.
	require.Len(t, f.dbs, 2)
	assert.ErrorContains(t, f.dbs[0].Ping(), "database is closed")
	assert.Same(t, f.dbs[1], db)
}

func TestConnectionService_ActivateDiscoveryFailure(t *testing.T) {
	f := newConnFixture(t, func(ctx context.Context, db *sql.DB) (*oracle.Discovery, error) {
		return nil, errors.New("ORA-01017: invalid username/password")
	})
	conn, err := f.svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	_, err = f.svc.Activate(context.Background(), conn.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrConnectivity)
	assert.Contains(t, err.Error(), "Connectivity/Discovery failed: ")
	assert.Contains(t, err.Error(), "ORA-01017")

	st := f.svc.Status()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Contains(t, st.LastError, "ORA-01017")

	_, err = f.svc.GetActive(context.Background())
	assert.ErrorIs(t, err, utils.ErrNoActiveConnection)
}

func TestConnectionService_ActivateMissing(t *testing.T) {
	f := newConnFixture(t, okDiscover)
	_, err := f.svc.Activate(context.Background(), 77)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestConnectionService_NoActiveConnection(t *testing.T) {
	f := newConnFixture(t, okDiscover)
	_, _, err := f.svc.Active(context.Background())
	assert.ErrorIs(t, err, utils.ErrNoActiveConnection)
}

func TestConnectionService_DeleteActiveResetsState(t *testing.T) {
	f := newConnFixture(t, okDiscover)
	conn, err := f.svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)
	_, err = f.svc.Activate(context.Background(), conn.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), conn.ID))
	assert.Equal(t, PhaseOffline, f.svc.Status().Phase)
	assert.ErrorIs(t, f.svc.Delete(context.Background(), conn.ID), utils.ErrNotFound)
}

func TestConnectionService_DeleteCascades(t *testing.T) {
	f := newConnFixture(t, okDiscover)
	conn, err := f.svc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.NoError(t, f.store.Create(&models.UserPreference{ConnectionID: conn.ID, ScreenID: "sessions", Data: "{}"}).Error)
	require.NoError(t, f.store.Create(&models.WorkloadSnapshot{ConnectionID: conn.ID, CapturedAt: time.Now()}).Error)

	require.NoError(t, f.svc.Delete(context.Background(), conn.ID))

	var prefs, snaps int64
	f.store.Model(&models.UserPreference{}).Where("connection_id = ?", conn.ID).Count(&prefs)
	f.store.Model(&models.WorkloadSnapshot{}).Where("connection_id = ?", conn.ID).Count(&snaps)
	assert.Zero(t, prefs)
	assert.Zero(t, snaps)
}

func TestConnectionService_Test(t *testing.T) {
	f := newConnFixture(t, okDiscover)
	d, err := f.svc.Test(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "PRIMARY", d.Role)
	assert.Equal(t, 1, f.opened)
}

func TestConnectionState_ConnectingTimesOut(t *testing.T) {
	s := NewConnectionState()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Begin(3, 5*time.Second)
	assert.Equal(t, PhaseConnecting, s.Status().Phase)

	now = now.Add(6 * time.Second)
	st := s.Status()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, uint(3), st.ConnectionID)
	assert.NotEmpty(t, st.LastError)

	s.Succeed(3)
	assert.Equal(t, PhaseConnected, s.Status().Phase)
	s.Reset()
	assert.Equal(t, PhaseOffline, s.Status().Phase)
}
