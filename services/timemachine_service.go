package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"oraconsoleapi/config"
	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/metrics"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/repository"
	"oraconsoleapi/utils"
)

// HistoryPoint is one timeline entry.
type HistoryPoint struct {
	Time           time.Time `json:"time"`
	SessionCount   int       `json:"session_count"`
	ActiveSessions int       `json:"active_sessions"`
}

// Snapshot is a full workload sample.
type Snapshot struct {
	Time     time.Time           `json:"time"`
	Sessions []readmodel.Session `json:"sessions"`
	LongOps  []map[string]any    `json:"long_ops"`
	Blocking []map[string]any    `json:"blocking"`
}

// TimeMachineService records and replays workload snapshots.
type TimeMachineService interface {
	Capture(ctx context.Context) (*models.WorkloadSnapshot, error)
	History(ctx context.Context, from, to time.Time) ([]HistoryPoint, error)
	SnapshotAt(ctx context.Context, at time.Time) (*Snapshot, error)
	Prune(ctx context.Context) (int64, error)
}

// TimeMachineDeps wires the collector.
type TimeMachineDeps struct {
	Connections repository.ConnectionRepository
	Snapshots   repository.SnapshotRepository
	Sessions    SessionService
	Metrics     *metrics.Metrics
	Now         func() time.Time
}

type timeMachineService struct {
	TimeMachineDeps
}

func NewTimeMachineService(deps TimeMachineDeps) TimeMachineService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &timeMachineService{deps}
}

func (s *timeMachineService) activeID() (uint, error) {
	conn, err := s.Connections.GetActive(nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, utils.ErrNoActiveConnection
		}
		return 0, err
	}
	return conn.ID, nil
}

// Capture samples every session plus long ops and blockers of the active
// connection and stores them.
func (s *timeMachineService) Capture(ctx context.Context) (*models.WorkloadSnapshot, error) {
	id, err := s.activeID()
	if err != nil {
		return nil, err
	}
	sessions, err := s.Sessions.Sessions(ctx, readmodel.AllFiltersOn(), 0)
	if err != nil {
		return nil, fmt.Errorf("snapshot sessions: %w", err)
	}
	longOps, err := s.Sessions.LongOps(ctx, 0)
	if err != nil {
		logger.Warnf("Snapshot without long ops: %v", err)
		longOps = []map[string]any{}
	}
	blocking, err := s.Sessions.Blocking(ctx, 0)
	if err != nil {
		logger.Warnf("Snapshot without blocking sessions: %v", err)
		blocking = []map[string]any{}
	}

	counts := readmodel.CountSessions(sessions)
	snap := &models.WorkloadSnapshot{
		ConnectionID:   id,
		CapturedAt:     s.Now().UTC(),
		SessionCount:   len(sessions),
		ActiveSessions: counts.Active,
	}
	if snap.SessionsJSON, err = encodeJSON(sessions); err != nil {
		return nil, err
	}
	if snap.LongOpsJSON, err = encodeJSON(longOps); err != nil {
		return nil, err
	}
	if snap.BlockingJSON, err = encodeJSON(blocking); err != nil {
		return nil, err
	}
	if err := s.Snapshots.Create(nil, snap); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}
	if s.Metrics != nil {
		s.Metrics.ActiveSessions.Set(float64(counts.Active))
	}
	logger.Debugf("Stored snapshot connection=%d sessions=%d active=%d", id, snap.SessionCount, snap.ActiveSessions)
	return snap, nil
}

func (s *timeMachineService) History(ctx context.Context, from, to time.Time) ([]HistoryPoint, error) {
	if to.IsZero() {
		to = s.Now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-time.Hour)
	}
	if from.After(to) {
		return nil, utils.Invalidf("start must be before end")
	}
	id, err := s.activeID()
	if err != nil {
		return nil, err
	}
	snaps, err := s.Snapshots.Range(nil, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	out := make([]HistoryPoint, 0, len(snaps))
	for _, sn := range snaps {
		out = append(out, HistoryPoint{Time: sn.CapturedAt, SessionCount: sn.SessionCount, ActiveSessions: sn.ActiveSessions})
	}
	return out, nil
}

// SnapshotAt returns the latest snapshot taken at or before at, or nil.
func (s *timeMachineService) SnapshotAt(ctx context.Context, at time.Time) (*Snapshot, error) {
	if at.IsZero() {
		at = s.Now().UTC()
	}
	id, err := s.activeID()
	if err != nil {
		return nil, err
	}
	sn, err := s.Snapshots.AtOrBefore(nil, id, at)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	out := &Snapshot{
		Time:     sn.CapturedAt,
		Sessions: []readmodel.Session{},
		LongOps:  []map[string]any{},
		Blocking: []map[string]any{},
	}
	decodeJSON(sn.SessionsJSON, &out.Sessions)
	decodeJSON(sn.LongOpsJSON, &out.LongOps)
	decodeJSON(sn.BlockingJSON, &out.Blocking)
	return out, nil
}

// Prune drops snapshots older than SNAPSHOT_RETENTION_DAYS.
func (s *timeMachineService) Prune(ctx context.Context) (int64, error) {
	days := config.Cfg.SnapshotRetentionDays
	if days <= 0 {
		days = 7
	}
	cutoff := s.Now().UTC().AddDate(0, 0, -days)
	n, err := s.Snapshots.DeleteOlderThan(nil, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	if n > 0 {
		logger.Infof("Pruned %d snapshots older than %s", n, cutoff.Format(time.RFC3339))
	}
	return n, nil
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(b), nil
}

func decodeJSON(s string, v any) {
	if s == "" {
		return
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		logger.Warnf("Corrupt snapshot payload: %v", err)
	}
}
