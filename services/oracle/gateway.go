// Package oracle owns the connection pools to the monitored Oracle databases
// and the helpers that turn result sets into the JSON rows served by the API.
package oracle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"

	go_ora "github.com/sijms/go-ora/v2"
)

// DriverName is the database/sql driver registered by go-ora.
const DriverName = "oracle"

// Provider resolves the pool of the currently active connection.
type Provider interface {
	// Active returns utils.ErrNoActiveConnection when no profile is active.
	Active(ctx context.Context) (*sql.DB, *models.DatabaseConnection, error)
}

// Target is everything needed to open a session, with the password in clear.
type Target struct {
	ID            uint
	Host          string
	Port          string
	Service       string
	Username      string
	Password      string
	Mode          string
	Role          string
	ConnectString string
	WalletPath    string
}

// TargetFor builds a Target from a stored profile and its decrypted password.
func TargetFor(c *models.DatabaseConnection, password string) Target {
	return Target{
		ID:            c.ID,
		Host:          c.Host,
		Port:          c.Port,
		Service:       c.Service,
		Username:      c.Username,
		Password:      password,
		Mode:          c.ConnectionMode,
		Role:          c.ConnectionRole,
		ConnectString: c.ConnectString,
		WalletPath:    c.WalletPath,
	}
}

// BuildDSN renders the go-ora URL for t. STRING mode hands the descriptor
// to the driver as-is; BASIC mode uses host, port and service.
func BuildDSN(t Target, connectTimeout time.Duration) (string, error) {
	opts := map[string]string{}
	if connectTimeout > 0 {
		opts["CONNECTION TIMEOUT"] = strconv.Itoa(int(connectTimeout.Seconds()))
	}
	if t.WalletPath != "" {
		opts["SSL"] = "enable"
		opts["WALLET"] = t.WalletPath
	}
	switch strings.ToUpper(t.Role) {
	case models.RoleSysDBA, models.RoleSysOper:
		opts["DBA PRIVILEGE"] = strings.ToUpper(t.Role)
	}

	if strings.EqualFold(t.Mode, models.ModeString) {
		if t.ConnectString == "" {
			return "", errors.New("connect string is required in STRING mode")
		}
		return go_ora.BuildJDBC(t.Username, t.Password, t.ConnectString, opts), nil
	}

	port, err := strconv.Atoi(t.Port)
	if err != nil {
		return "", fmt.Errorf("invalid port %q: %w", t.Port, err)
	}
	if t.Host == "" || t.Service == "" {
		return "", errors.New("host and service are required in BASIC mode")
	}
	return go_ora.BuildUrl(t.Host, port, t.Service, t.Username, t.Password, opts), nil
}

// Opener opens a database/sql handle for a DSN.
type Opener func(dsn string) (*sql.DB, error)

func openOracle(dsn string) (*sql.DB, error) {
	return sql.Open(DriverName, dsn)
}

// GatewayConfig configures a Gateway.
type GatewayConfig struct {
	ConnectTimeout time.Duration
	MaxOpenConns   int
	Open           Opener
}

// Gateway caches one pool per connection profile.
type Gateway struct {
	cfg GatewayConfig

	mu    sync.Mutex
	pools map[uint]*sql.DB
}

// NewGateway creates an empty gateway.
func NewGateway(cfg GatewayConfig) *Gateway {
	if cfg.Open == nil {
		cfg.Open = openOracle
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	if cfg.MaxOpenConns <= 0 {
		cfg.MaxOpenConns = 5
	}
	return &Gateway{cfg: cfg, pools: make(map[uint]*sql.DB)}
}

// ConnectTimeout bounds every connect attempt.
func (g *Gateway) ConnectTimeout() time.Duration {
	return g.cfg.ConnectTimeout
}

// Connect opens a fresh pool for t and verifies it with a ping bounded by
// the connect timeout. The caller owns the returned handle.
func (g *Gateway) Connect(ctx context.Context, t Target) (*sql.DB, error) {
	dsn, err := BuildDSN(t, g.cfg.ConnectTimeout)
	if err != nil {
		return nil, err
	}
	db, err := g.cfg.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open oracle connection: %w", err)
	}
	db.SetMaxOpenConns(g.cfg.MaxOpenConns)
	db.SetMaxIdleConns(g.cfg.MaxOpenConns)
	db.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, g.cfg.ConnectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		if errors.Is(pingCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("connect to %s timed out after %v", describe(t), g.cfg.ConnectTimeout)
		}
		return nil, fmt.Errorf("connect to %s: %w", describe(t), err)
	}
	return db, nil
}

// Pool returns the cached pool for t, connecting on first use.
func (g *Gateway) Pool(ctx context.Context, t Target) (*sql.DB, error) {
	g.mu.Lock()
	db, ok := g.pools[t.ID]
	g.mu.Unlock()
	if ok {
		return db, nil
	}

	db, err := g.Connect(ctx, t)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if existing, ok := g.pools[t.ID]; ok {
		// Lost a race with another caller; keep theirs.
		db.Close()
		return existing, nil
	}
	g.pools[t.ID] = db
	logger.Infof("Oracle pool opened for connection %d (%s)", t.ID, describe(t))
	return db, nil
}

// Invalidate closes and forgets the pool for a profile.
func (g *Gateway) Invalidate(id uint) {
	g.mu.Lock()
	db, ok := g.pools[id]
	delete(g.pools, id)
	g.mu.Unlock()
	if ok {
		if err := db.Close(); err != nil {
			logger.Warnf("Closing Oracle pool %d: %v", id, err)
		}
	}
}

// Retain closes every cached pool except the one for keep and returns how
// many were closed.
func (g *Gateway) Retain(keep uint) int {
	g.mu.Lock()
	stale := make(map[uint]*sql.DB)
	for id, db := range g.pools {
		if id != keep {
			stale[id] = db
			delete(g.pools, id)
		}
	}
	g.mu.Unlock()

	for id, db := range stale {
		if err := db.Close(); err != nil {
			logger.Warnf("Closing Oracle pool %d: %v", id, err)
		}
	}
	return len(stale)
}

// Close closes every cached pool.
func (g *Gateway) Close() error {
	g.mu.Lock()
	pools := g.pools
	g.pools = make(map[uint]*sql.DB)
	g.mu.Unlock()

	var errs []error
	for _, db := range pools {
		errs = append(errs, db.Close())
	}
	return errors.Join(errs...)
}

func describe(t Target) string {
	if strings.EqualFold(t.Mode, models.ModeString) {
		return t.Username + "@<connect string>"
	}
	return fmt.Sprintf("%s@%s:%s/%s", t.Username, t.Host, t.Port, t.Service)
}
