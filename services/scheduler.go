package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"oraconsoleapi/config"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/metrics"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/services/notify"
)

// Default job schedules, with seconds.
const (
	DefaultSnapshotCron = "*/10 * * * * *"
	DefaultHealthCron   = "0 */5 * * * *"
	DefaultPruneCron    = "0 0 * * * *"
)

// SchedulerDeps are the services the background jobs call.
type SchedulerDeps struct {
	TimeMachine TimeMachineService
	Dashboard   DashboardService
	Connections ConnectionService
	Activity    *activity.Log
	Notifier    notify.Notifier
	Metrics     *metrics.Metrics
}

// Scheduler runs the snapshot collector, retention pruning and the
// tablespace health check.
type Scheduler struct {
	SchedulerDeps
	cron    *cron.Cron
	timeout time.Duration
	// alerted remembers tablespaces already reported until they recover.
	alerted map[string]bool
}

func NewScheduler(deps SchedulerDeps) *Scheduler {
	return &Scheduler{
		SchedulerDeps: deps,
		cron:          cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		timeout:       time.Minute,
		alerted:       map[string]bool{},
	}
}

func orDefault(expr, def string) string {
	if expr == "" {
		return def
	}
	return expr
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	jobs := []struct {
		name string
		expr string
		fn   func(context.Context) error
	}{
		{"snapshot", orDefault(config.Cfg.SnapshotCron, DefaultSnapshotCron), s.snapshot},
		{"prune", DefaultPruneCron, s.prune},
		{"health", orDefault(config.Cfg.HealthCron, DefaultHealthCron), s.CheckTablespaces},
	}
	for _, j := range jobs {
		j := j
		if _, err := s.cron.AddFunc(j.expr, func() { s.run(j.name, j.fn) }); err != nil {
			return fmt.Errorf("schedule %s job %q: %w", j.name, j.expr, err)
		}
		logger.Infof("Scheduled %s job: %s", j.name, j.expr)
	}
	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run(name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		if isNoActive(err) {
			logger.Debugf("%s job skipped: no active connection", name)
			return
		}
		s.Metrics.RecordError("job_" + name)
		logger.Warnf("%s job failed: %v", name, err)
	}
}

func (s *Scheduler) snapshot(ctx context.Context) error {
	if s.Connections != nil && s.Connections.Status().Phase != PhaseConnected {
		return nil
	}
	_, err := s.TimeMachine.Capture(ctx)
	return err
}

func (s *Scheduler) prune(ctx context.Context) error {
	_, err := s.TimeMachine.Prune(ctx)
	return err
}

// CheckTablespaces publishes usage gauges and raises one alert per
// tablespace crossing TABLESPACE_ALERT_PCT.
func (s *Scheduler) CheckTablespaces(ctx context.Context) error {
	rows, err := s.Dashboard.Tablespaces(ctx)
	if err != nil {
		return err
	}
	conn, err := s.Connections.GetActive(ctx)
	if err != nil {
		return err
	}
	threshold := config.Cfg.TablespaceAlertPct
	if threshold <= 0 {
		threshold = 90
	}
	for _, r := range rows {
		name := readmodel.String(r, "tablespace_name")
		pct := readmodel.Float(r, "used_pct")
		if s.Metrics != nil {
			s.Metrics.TablespaceUsedRatio.WithLabelValues(name).Set(pct)
		}
		key := fmt.Sprintf("%d/%s", conn.ID, name)
		if pct < threshold {
			delete(s.alerted, key)
			continue
		}
		if s.alerted[key] {
			continue
		}
		s.alerted[key] = true
		msg := fmt.Sprintf("Tablespace %s on %s is %.1f%% used (threshold %.0f%%)", name, conn.Name, pct, threshold)
		if s.Activity != nil {
			s.Activity.Alert(conn.ID, msg)
		}
		if s.Notifier != nil {
			if err := s.Notifier.Notify("Tablespace alert: "+name, msg); err != nil {
				logger.Warnf("Alert mail failed: %v", err)
			}
		}
	}
	return nil
}
