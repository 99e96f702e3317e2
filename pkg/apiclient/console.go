package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/readmodel"
)

// Connections lists saved profiles with passwords masked.
func (c *Client) Connections(ctx context.Context) ([]models.DatabaseConnection, error) {
	var out []models.DatabaseConnection
	return out, c.get(ctx, "/connections", nil, &out)
}

// Connection returns one profile with its password masked.
func (c *Client) Connection(ctx context.Context, id uint) (*models.DatabaseConnection, error) {
	var out models.DatabaseConnection
	if err := c.get(ctx, fmt.Sprintf("/connections/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveConnection returns the active profile. It fails with a 404
// *APIError when none is active.
func (c *Client) ActiveConnection(ctx context.Context) (*models.DatabaseConnection, error) {
	var out models.DatabaseConnection
	if err := c.get(ctx, "/connections/active", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ConnectionStatus(ctx context.Context) (*ConnectionStatus, error) {
	var out ConnectionStatus
	if err := c.get(ctx, "/connections/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateConnection(ctx context.Context, req models.ConnectionRequest) (*models.DatabaseConnection, error) {
	var out models.DatabaseConnection
	if err := c.post(ctx, "/connections", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConnection replaces a profile. Sending models.MaskedPassword keeps
// the stored password.
func (c *Client) UpdateConnection(ctx context.Context, id uint, req models.ConnectionRequest) error {
	var out MessageResponse
	return c.put(ctx, fmt.Sprintf("/connections/%d", id), req, &out)
}

func (c *Client) DeleteConnection(ctx context.Context, id uint) error {
	var out MessageResponse
	return c.delete(ctx, fmt.Sprintf("/connections/%d", id), &out)
}

// ActivateConnection makes id the single active profile.
func (c *Client) ActivateConnection(ctx context.Context, id uint) (*DiscoveryResponse, error) {
	var out DiscoveryResponse
	if err := c.post(ctx, fmt.Sprintf("/connections/%d/activate", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TestConnection tries an unsaved profile.
func (c *Client) TestConnection(ctx context.Context, req models.ConnectionRequest) (*DiscoveryResponse, error) {
	var out DiscoveryResponse
	if err := c.post(ctx, "/connections/test", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	var out DashboardMetrics
	if err := c.get(ctx, "/dashboard/metrics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DashboardTablespaces(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/dashboard/tablespaces", nil)
}

func (c *Client) Healthcheck(ctx context.Context) ([]Finding, error) {
	var out []Finding
	return out, c.get(ctx, "/healthcheck", nil, &out)
}

// AlertLog returns the latest alert log lines. limit <= 0 uses the server
// default.
func (c *Client) AlertLog(ctx context.Context, limit int) (Rows, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return c.rows(ctx, "/logs/alert", q)
}

func (c *Client) OutstandingAlerts(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/logs/outstanding", nil)
}

func (c *Client) Parameters(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/configuration/parameters", nil)
}

// History returns the recorded timeline between from and to.
func (c *Client) History(ctx context.Context, from, to time.Time) ([]HistoryPoint, error) {
	q := url.Values{
		"start": {from.UTC().Format(time.RFC3339)},
		"end":   {to.UTC().Format(time.RFC3339)},
	}
	var out []HistoryPoint
	return out, c.get(ctx, "/timemachine/history", q, &out)
}

// SnapshotAt returns the latest snapshot at or before at.
func (c *Client) SnapshotAt(ctx context.Context, at time.Time) (*Snapshot, error) {
	var out Snapshot
	q := url.Values{"at": {at.UTC().Format(time.RFC3339)}}
	if err := c.get(ctx, "/timemachine/snapshot", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Preferences returns the saved UI state of a screen, empty when none.
func (c *Client) Preferences(ctx context.Context, screenID string) (map[string]any, error) {
	var out map[string]any
	return out, c.get(ctx, "/preferences/"+escape(screenID), nil, &out)
}

func (c *Client) SavePreferences(ctx context.Context, screenID string, data map[string]any) error {
	return c.action(ctx, "/preferences", models.PreferenceRequest{ScreenID: screenID, Data: data})
}

// Activity returns one page of recorded actions. page <= 0 returns every
// entry; connectionID 0 means all connections.
func (c *Client) Activity(ctx context.Context, connectionID uint, page, pageSize int) (*readmodel.Page[ActivityEntry], error) {
	q := url.Values{}
	if connectionID > 0 {
		q.Set("connection_id", strconv.FormatUint(uint64(connectionID), 10))
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
		if pageSize > 0 {
			q.Set("page_size", strconv.Itoa(pageSize))
		}
	}
	var out readmodel.Page[ActivityEntry]
	if err := c.get(ctx, "/activity", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetActivity(ctx context.Context, id string) (*ActivityEntry, error) {
	var out ActivityEntry
	if err := c.get(ctx, "/activity/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
