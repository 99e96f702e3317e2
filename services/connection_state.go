package services

import (
	"sync"
	"time"
)

// ConnectionPhase is where the active profile stands.
type ConnectionPhase string

const (
	PhaseOffline    ConnectionPhase = "Offline"
	PhaseConnecting ConnectionPhase = "Connecting"
	PhaseConnected  ConnectionPhase = "Connected"
	PhaseFailed     ConnectionPhase = "Failed"
)

// ConnectionStatus is a copy of ConnectionState for clients.
type ConnectionStatus struct {
	Phase        ConnectionPhase `json:"status"`
	ConnectionID uint            `json:"connection_id,omitempty"`
	Since        time.Time       `json:"since"`
	LastError    string          `json:"last_error,omitempty"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
}

// ConnectionState tracks the lifecycle of the active connection. Connecting
// always carries a deadline so it cannot outlive the connect timeout.
type ConnectionState struct {
	mu     sync.RWMutex
	status ConnectionStatus
	now    func() time.Time
}

// NewConnectionState starts Offline.
func NewConnectionState() *ConnectionState {
	s := &ConnectionState{now: time.Now}
	s.status = ConnectionStatus{Phase: PhaseOffline, Since: s.now()}
	return s
}

// Begin enters Connecting for id until timeout elapses.
func (s *ConnectionState) Begin(id uint, timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	deadline := now.Add(timeout)
	s.status = ConnectionStatus{Phase: PhaseConnecting, ConnectionID: id, Since: now, Deadline: &deadline}
}

// Succeed enters Connected for id.
func (s *ConnectionState) Succeed(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = ConnectionStatus{Phase: PhaseConnected, ConnectionID: id, Since: s.now()}
}

// Fail enters Failed for id, keeping the cause.
func (s *ConnectionState) Fail(id uint, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := ConnectionStatus{Phase: PhaseFailed, ConnectionID: id, Since: s.now()}
	if err != nil {
		st.LastError = err.Error()
	}
	s.status = st
}

// Reset returns to Offline, e.g. after the active profile is deleted.
func (s *ConnectionState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = ConnectionStatus{Phase: PhaseOffline, Since: s.now()}
}

// Status returns the current state. A Connecting state past its deadline is
// reported as Failed.
func (s *ConnectionState) Status() ConnectionStatus {
	s.mu.RLock()
	st := s.status
	s.mu.RUnlock()
	if st.Phase == PhaseConnecting && st.Deadline != nil && s.now().After(*st.Deadline) {
		return ConnectionStatus{
			Phase:        PhaseFailed,
			ConnectionID: st.ConnectionID,
			Since:        *st.Deadline,
			LastError:    "connect attempt timed out",
		}
	}
	return st
}
