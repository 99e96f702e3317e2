package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oraconsoleapi/config"
	"oraconsoleapi/models"
	"oraconsoleapi/services/activity"
)

type fakeDashboard struct {
	DashboardService
	rows []map[string]any
}

func (f *fakeDashboard) Tablespaces(ctx context.Context) ([]map[string]any, error) {
	return f.rows, nil
}

type fakeConnections struct {
	ConnectionService
	phase ConnectionPhase
}

func (f fakeConnections) GetActive(ctx context.Context) (*models.DatabaseConnection, error) {
	return &models.DatabaseConnection{ID: 3, Name: "prod-east"}, nil
}

func (f fakeConnections) Status() ConnectionStatus {
	return ConnectionStatus{Phase: f.phase}
}

type recordingNotifier struct {
	subjects []string
}

func (n *recordingNotifier) Notify(subject, body string) error {
	n.subjects = append(n.subjects, subject)
	return nil
}

type countingTimeMachine struct {
	TimeMachineService
	captures int
}

func (c *countingTimeMachine) Capture(ctx context.Context) (*models.WorkloadSnapshot, error) {
	c.captures++
	return &models.WorkloadSnapshot{}, nil
}

func TestScheduler_TablespaceAlertFiresOncePerCrossing(t *testing.T) {
	prev := config.Cfg.TablespaceAlertPct
	config.Cfg.TablespaceAlertPct = 85
	t.Cleanup(func() { config.Cfg.TablespaceAlertPct = prev })

	dash := &fakeDashboard{rows: []map[string]any{
		{"tablespace_name": "USERS", "used_pct": 91.5},
		{"tablespace_name": "SYSAUX", "used_pct": 40.0},
	}}
	notifier := &recordingNotifier{}
	log := activity.NewLog(10, nil)
	s := NewScheduler(SchedulerDeps{
		Dashboard:   dash,
		Connections: fakeConnections{phase: PhaseConnected},
		Activity:    log,
		Notifier:    notifier,
	})

	require.NoError(t, s.CheckTablespaces(context.Background()))
	require.NoError(t, s.CheckTablespaces(context.Background()))
	assert.Equal(t, []string{"Tablespace alert: USERS"}, notifier.subjects)

	entries := log.List()
	require.Len(t, entries, 1)
	assert.Equal(t, activity.StatusAlert, entries[0].Status)
	assert.Contains(t, entries[0].Message, "USERS on prod-east is 91.5% used")

	// Recovery re-arms the alert.
	dash.rows[0]["used_pct"] = 60.0
	require.NoError(t, s.CheckTablespaces(context.Background()))
	dash.rows[0]["used_pct"] = 95.0
	require.NoError(t, s.CheckTablespaces(context.Background()))
	assert.Len(t, notifier.subjects, 2)
}

func TestScheduler_SnapshotOnlyWhenConnected(t *testing.T) {
	tm := &countingTimeMachine{}
	s := NewScheduler(SchedulerDeps{TimeMachine: tm, Connections: fakeConnections{phase: PhaseConnecting}})
	require.NoError(t, s.snapshot(context.Background()))
	assert.Zero(t, tm.captures)

	s.Connections = fakeConnections{phase: PhaseConnected}
	require.NoError(t, s.snapshot(context.Background()))
	assert.Equal(t, 1, tm.captures)
}

func TestScheduler_StartRejectsBadSchedule(t *testing.T) {
	prev := config.Cfg.SnapshotCron
	config.Cfg.SnapshotCron = "every ten seconds"
	t.Cleanup(func() { config.Cfg.SnapshotCron = prev })

	s := NewScheduler(SchedulerDeps{})
	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule snapshot job")
}
