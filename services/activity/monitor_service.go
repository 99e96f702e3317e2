// Package activity keeps an in-memory record of the actions dispatched to
// Oracle (kills, resizes, statistics gathers, job runs) and of the alerts
// raised by the background checks.
package activity

import (
	"sort"
	"sync"
	"time"

	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/metrics"
	"oraconsoleapi/pkg/readmodel"

	"github.com/google/uuid"
)

// Entry status values.
const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusAlert   = "alert"
)

// Categories used by the services.
const (
	CategoryConnection = "connection"
	CategorySession    = "session"
	CategoryStorage    = "storage"
	CategoryRedo       = "redo"
	CategoryStatistics = "statistics"
	CategoryJob        = "job"
	CategoryAlert      = "alert"
)

// Entry is one recorded action.
type Entry struct {
	ID           string     `json:"id"`
	ConnectionID uint       `json:"connection_id,omitempty"`
	Category     string     `json:"category"`
	Message      string     `json:"message"`
	Status       string     `json:"status"`
	Error        string     `json:"error,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

// DefaultCapacity bounds the log when NewLog is given a non-positive size.
const DefaultCapacity = 500

// Log is a bounded, concurrency-safe activity record. The oldest entries are
// evicted first once capacity is reached.
type Log struct {
	mu       sync.RWMutex
	entries  map[string]*Entry
	order    []string
	capacity int
	metrics  *metrics.Metrics
}

// NewLog creates an empty log.
func NewLog(capacity int, m *metrics.Metrics) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		entries:  make(map[string]*Entry),
		capacity: capacity,
		metrics:  m,
	}
}

// Begin records a running action and returns its id.
func (l *Log) Begin(connectionID uint, category, message string) string {
	e := &Entry{
		ID:           uuid.NewString(),
		ConnectionID: connectionID,
		Category:     category,
		Message:      message,
		Status:       StatusRunning,
		StartTime:    time.Now(),
	}
	l.add(e)
	logger.Infof("Action %s started: [%s] %s", e.ID, category, message)
	return e.ID
}

// Complete closes a running action with the outcome of err.
func (l *Log) Complete(id string, err error) {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		l.mu.Unlock()
		logger.Warnf("Action %s not found when completing", id)
		return
	}
	now := time.Now()
	e.EndTime = &now
	e.Status = StatusSuccess
	if err != nil {
		e.Status = StatusFailed
		e.Error = err.Error()
	}
	category := e.Category
	l.mu.Unlock()

	if err != nil {
		logger.Errorf("Action %s failed: %v", id, err)
	} else {
		logger.Infof("Action %s completed", id)
	}
	l.metrics.RecordAction(category, err)
}

// Track runs fn as a recorded action.
func (l *Log) Track(connectionID uint, category, message string, fn func() error) error {
	id := l.Begin(connectionID, category, message)
	err := fn()
	l.Complete(id, err)
	return err
}

// Alert records a finished alert entry.
func (l *Log) Alert(connectionID uint, message string) Entry {
	now := time.Now()
	e := &Entry{
		ID:           uuid.NewString(),
		ConnectionID: connectionID,
		Category:     CategoryAlert,
		Message:      message,
		Status:       StatusAlert,
		StartTime:    now,
		EndTime:      &now,
	}
	l.add(e)
	logger.Warnf("Alert raised: %s", message)
	return *e
}

// Get returns a copy of one entry.
func (l *Log) Get(id string) (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// List returns copies of all entries, newest first.
func (l *Log) List() []Entry {
	l.mu.RLock()
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, *e)
	}
	l.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out
}

// Page returns one page of List narrowed to connectionID, or to every
// connection when it is 0. A pageSize of 0 returns all matches as page 1.
func (l *Log) Page(connectionID uint, page, pageSize int) readmodel.Page[Entry] {
	entries := l.List()
	if connectionID != 0 {
		filtered := entries[:0]
		for _, e := range entries {
			if e.ConnectionID == connectionID {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if pageSize == 0 {
		page, pageSize = 1, len(entries)
	}
	return readmodel.Paginate(entries, page, pageSize)
}

func (l *Log) add(e *Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[e.ID] = e
	l.order = append(l.order, e.ID)
	for len(l.order) > l.capacity {
		delete(l.entries, l.order[0])
		l.order = l.order[1:]
	}
}
