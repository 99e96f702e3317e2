package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/repository"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"

	"gorm.io/gorm"
)

// ConnectionService manages connection profiles and the active connection.
// It also serves as the oracle.Provider for every Oracle-backed service.
type ConnectionService interface {
	oracle.Provider
	List(ctx context.Context) ([]models.DatabaseConnection, error)
	Get(ctx context.Context, id uint) (*models.DatabaseConnection, error)
	GetActive(ctx context.Context) (*models.DatabaseConnection, error)
	Create(ctx context.Context, req models.ConnectionRequest) (*models.DatabaseConnection, error)
	Update(ctx context.Context, id uint, req models.ConnectionRequest) error
	Delete(ctx context.Context, id uint) error
	Activate(ctx context.Context, id uint) (*oracle.Discovery, error)
	Test(ctx context.Context, req models.ConnectionRequest) (*oracle.Discovery, error)
	Status() ConnectionStatus
}

// Discoverer reads discovery data from an open pool.
type Discoverer func(ctx context.Context, db *sql.DB) (*oracle.Discovery, error)

// ConnectionServiceDeps are the collaborators of the connection service.
type ConnectionServiceDeps struct {
	Repo        repository.ConnectionRepository
	Preferences repository.PreferenceRepository
	Snapshots   repository.SnapshotRepository
	Gateway     *oracle.Gateway
	Cipher      *utils.Cipher
	State       *ConnectionState
	Activity    *activity.Log
	Discover    Discoverer
	// Tx, when set, runs the delete cascade in one transaction.
	Tx repository.BaseRepository
}

type connectionService struct {
	ConnectionServiceDeps
}

// NewConnectionService wires a connection service. Discover defaults to
// oracle.Discover and State to a fresh Offline state.
func NewConnectionService(deps ConnectionServiceDeps) ConnectionService {
	if deps.Discover == nil {
		deps.Discover = oracle.Discover
	}
	if deps.State == nil {
		deps.State = NewConnectionState()
	}
	return &connectionService{ConnectionServiceDeps: deps}
}

func (s *connectionService) List(ctx context.Context) ([]models.DatabaseConnection, error) {
	conns, err := s.Repo.List(nil)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	status := s.State.Status()
	for i := range conns {
		conns[i] = presentConnection(conns[i], status)
	}
	return conns, nil
}

func (s *connectionService) Get(ctx context.Context, id uint) (*models.DatabaseConnection, error) {
	conn, err := s.Repo.GetByID(nil, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundf("Connection not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load connection %d: %w", id, err)
	}
	out := presentConnection(*conn, s.State.Status())
	return &out, nil
}

// presentConnection masks the password and reports the lifecycle phase,
// which is Offline for every profile but the tracked active one.
func presentConnection(conn models.DatabaseConnection, status ConnectionStatus) models.DatabaseConnection {
	out := conn.Masked()
	out.Status = string(PhaseOffline)
	if out.IsActive && status.ConnectionID == out.ID {
		out.Status = string(status.Phase)
	}
	return out
}

func (s *connectionService) GetActive(ctx context.Context) (*models.DatabaseConnection, error) {
	conn, err := s.Repo.GetActive(nil)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNoActiveConnection
	}
	if err != nil {
		return nil, fmt.Errorf("load active connection: %w", err)
	}
	masked := conn.Masked()
	masked.Status = string(s.State.Status().Phase)
	return &masked, nil
}

func (s *connectionService) Create(ctx context.Context, req models.ConnectionRequest) (*models.DatabaseConnection, error) {
	req = normalizeRequest(req)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	sealed, err := s.Cipher.Encrypt(req.Password)
	if err != nil {
		return nil, fmt.Errorf("encrypt password: %w", err)
	}
	conn := &models.DatabaseConnection{}
	applyRequest(conn, req)
	conn.Password = sealed

	if err := s.Repo.Create(nil, conn); err != nil {
		return nil, fmt.Errorf("create connection: %w", err)
	}
	logger.Infof("Created connection id=%d name=%s type=%s", conn.ID, conn.Name, conn.Type)
	masked := conn.Masked()
	return &masked, nil
}

func (s *connectionService) Update(ctx context.Context, id uint, req models.ConnectionRequest) error {
	req = normalizeRequest(req)
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	conn, err := s.Repo.GetByID(nil, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFoundf("Connection not found")
	}
	if err != nil {
		return fmt.Errorf("load connection %d: %w", id, err)
	}

	applyRequest(conn, req)
	if req.Password != models.MaskedPassword {
		sealed, err := s.Cipher.Encrypt(req.Password)
		if err != nil {
			return fmt.Errorf("encrypt password: %w", err)
		}
		conn.Password = sealed
	}
	if err := s.Repo.Update(nil, conn); err != nil {
		return fmt.Errorf("update connection %d: %w", id, err)
	}
	// the next query reconnects with the new settings
	s.Gateway.Invalidate(id)
	logger.Infof("Updated connection id=%d name=%s", id, conn.Name)
	return nil
}

func (s *connectionService) Delete(ctx context.Context, id uint) error {
	conn, err := s.Repo.GetByID(nil, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFoundf("Connection not found")
	}
	if err != nil {
		return fmt.Errorf("load connection %d: %w", id, err)
	}

	cascade := func(tx *gorm.DB) error {
		if err := s.Repo.DeleteByID(tx, id); err != nil {
			return fmt.Errorf("delete connection %d: %w", id, err)
		}
		if s.Preferences != nil {
			if err := s.Preferences.DeleteByConnection(tx, id); err != nil {
				return fmt.Errorf("delete preferences of connection %d: %w", id, err)
			}
		}
		if s.Snapshots != nil {
			if err := s.Snapshots.DeleteByConnection(tx, id); err != nil {
				return fmt.Errorf("delete snapshots of connection %d: %w", id, err)
			}
		}
		return nil
	}
	if s.Tx != nil {
		err = s.Tx.Transaction(cascade)
	} else {
		err = cascade(nil)
	}
	if err != nil {
		return err
	}
	s.Gateway.Invalidate(id)
	if conn.IsActive {
		s.State.Reset()
	}
	logger.Infof("Deleted connection id=%d name=%s", id, conn.Name)
	return nil
}

func (s *connectionService) Activate(ctx context.Context, id uint) (*oracle.Discovery, error) {
	conn, err := s.Repo.GetByID(nil, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundf("Connection not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load connection %d: %w", id, err)
	}

	var discovery *oracle.Discovery
	err = s.Activity.Track(id, activity.CategoryConnection, "activate "+conn.Name, func() error {
		d, err := s.connectAndDiscover(ctx, conn)
		if err != nil {
			return err
		}
		d.Apply(conn)
		if err := s.Repo.Activate(nil, conn); err != nil {
			s.State.Fail(id, err)
			return fmt.Errorf("store active connection: %w", err)
		}
		discovery = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.State.Succeed(id)
	if n := s.Gateway.Retain(id); n > 0 {
		logger.Debugf("Closed %d pool(s) of previously active connections", n)
	}
	logger.Infof("Activated connection id=%d name=%s db=%s role=%s", id, conn.Name, discovery.Name, discovery.Role)
	return discovery, nil
}

// connectAndDiscover replaces any cached pool for conn with a fresh one and
// runs discovery on it, all within the Connecting window.
func (s *connectionService) connectAndDiscover(ctx context.Context, conn *models.DatabaseConnection) (*oracle.Discovery, error) {
	password, err := s.Cipher.Decrypt(conn.Password)
	if err != nil {
		return nil, fmt.Errorf("decrypt password of connection %d: %w", conn.ID, err)
	}

	s.Gateway.Invalidate(conn.ID)
	s.State.Begin(conn.ID, s.Gateway.ConnectTimeout())

	db, err := s.Gateway.Pool(ctx, oracle.TargetFor(conn, password))
	if err != nil {
		s.State.Fail(conn.ID, err)
		return nil, utils.ConnectivityError(err)
	}
	d, err := s.Discover(ctx, db)
	if err != nil {
		s.Gateway.Invalidate(conn.ID)
		s.State.Fail(conn.ID, err)
		return nil, utils.ConnectivityError(err)
	}
	return d, nil
}

func (s *connectionService) Test(ctx context.Context, req models.ConnectionRequest) (*oracle.Discovery, error) {
	req = normalizeRequest(req)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	var tmp models.DatabaseConnection
	applyRequest(&tmp, req)

	db, err := s.Gateway.Connect(ctx, oracle.TargetFor(&tmp, req.Password))
	if err != nil {
		return nil, utils.ConnectivityError(err)
	}
	defer db.Close()

	d, err := s.Discover(ctx, db)
	if err != nil {
		return nil, utils.ConnectivityError(err)
	}
	return d, nil
}

func (s *connectionService) Status() ConnectionStatus {
	return s.State.Status()
}

// Active implements oracle.Provider.
func (s *connectionService) Active(ctx context.Context) (*sql.DB, *models.DatabaseConnection, error) {
	conn, err := s.Repo.GetActive(nil)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, utils.ErrNoActiveConnection
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load active connection: %w", err)
	}
	password, err := s.Cipher.Decrypt(conn.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("decrypt password of connection %d: %w", conn.ID, err)
	}
	db, err := s.Gateway.Pool(ctx, oracle.TargetFor(conn, password))
	if err != nil {
		s.State.Fail(conn.ID, err)
		return nil, nil, fmt.Errorf("connect to active connection %s: %w", conn.Name, err)
	}
	if s.State.Status().Phase != PhaseConnected {
		s.State.Succeed(conn.ID)
	}
	return db, conn, nil
}

func normalizeRequest(req models.ConnectionRequest) models.ConnectionRequest {
	req.ConnectionMode = strings.ToUpper(strings.TrimSpace(req.ConnectionMode))
	if req.ConnectionMode == "" {
		req.ConnectionMode = models.ModeBasic
	}
	req.ConnectionRole = strings.ToUpper(strings.TrimSpace(req.ConnectionRole))
	if req.ConnectionRole == "" {
		req.ConnectionRole = models.RoleNormal
	}
	req.Type = strings.ToUpper(strings.TrimSpace(req.Type))
	req.Host = strings.TrimSpace(req.Host)
	return req
}

func applyRequest(conn *models.DatabaseConnection, req models.ConnectionRequest) {
	conn.Name = req.Name
	conn.Host = req.Host
	conn.Port = req.Port
	conn.Service = req.Service
	conn.Username = req.Username
	conn.Type = req.Type
	conn.ConnectionMode = req.ConnectionMode
	conn.ConnectionRole = req.ConnectionRole
	conn.WalletPath = req.WalletPath
	conn.TNSAdmin = req.TNSAdmin
	conn.ConnectString = req.ConnectString
	if req.ConnectionMode == models.ModeBasic {
		conn.ConnectString = scriptgen.GenerateTNS(scriptgen.TNSOptions{
			Host:       req.Host,
			Port:       req.Port,
			Service:    req.Service,
			WalletPath: req.WalletPath,
		})
	}
}
