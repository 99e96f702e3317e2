package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/readmodel"
)

func (c *Client) rows(ctx context.Context, path string, query url.Values) (Rows, error) {
	var out Rows
	return out, c.get(ctx, path, query, &out)
}

func (c *Client) object(ctx context.Context, path string) (map[string]any, error) {
	var out map[string]any
	return out, c.get(ctx, path, nil, &out)
}

func (c *Client) action(ctx context.Context, path string, body any) error {
	var out StatusResponse
	return c.post(ctx, path, nil, body, &out)
}

func (c *Client) Tablespaces(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/tablespaces", nil)
}

func (c *Client) Datafiles(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/datafiles", nil)
}

// TablespaceMap returns the extent map of ts, limited to fileID when it is
// positive.
func (c *Client) TablespaceMap(ctx context.Context, ts string, fileID int) (*TablespaceMap, error) {
	q := url.Values{"ts_name": {ts}}
	if fileID > 0 {
		q.Set("file_id", strconv.Itoa(fileID))
	}
	var out TablespaceMap
	if err := c.get(ctx, "/storage/tablespace-map", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TopSegments(ctx context.Context, ts string) (Rows, error) {
	return c.rows(ctx, "/storage/segments/"+escape(ts), nil)
}

func (c *Client) ControlFiles(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/control", nil)
}

func (c *Client) Sysaux(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/sysaux", nil)
}

func (c *Client) Undo(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/undo", nil)
}

func (c *Client) Temp(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/temp", nil)
}

func (c *Client) Checkpoint(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, "/storage/checkpoint")
}

func (c *Client) StorageCharts(ctx context.Context) (*StorageCharts, error) {
	var out StorageCharts
	if err := c.get(ctx, "/storage/charts", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForceCheckpoint(ctx context.Context) error {
	return c.action(ctx, "/storage/checkpoint/force", nil)
}

func (c *Client) ResizeDatafile(ctx context.Context, req models.DatafileResizeRequest) error {
	return c.action(ctx, "/storage/files/resize", req)
}

func (c *Client) AddDatafile(ctx context.Context, req models.DatafileAddRequest) error {
	return c.action(ctx, "/storage/files/add", req)
}

// ReorgSQL renders the reorganization statement for one map block.
func (c *Client) ReorgSQL(ctx context.Context, ts string, block readmodel.ExtentBlock) (string, error) {
	var out Script
	body := map[string]any{"tablespace": ts, "block": block}
	if err := c.post(ctx, "/storage/reorg-sql", nil, body, &out); err != nil {
		return "", err
	}
	return out.Script, nil
}

func (c *Client) RedoGroups(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/redo", nil)
}

func (c *Client) RedoMembers(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/redo/members", nil)
}

// RedoHistory returns log switches per hour. days <= 0 uses the server
// default; thread 0 means all threads.
func (c *Client) RedoHistory(ctx context.Context, days, thread int) (Rows, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	if thread > 0 {
		q.Set("inst_id", strconv.Itoa(thread))
	}
	return c.rows(ctx, "/storage/redo/history", q)
}

func (c *Client) RedoThreads(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/redo/threads", nil)
}

func (c *Client) StandbyLogs(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/redo/standby", nil)
}

func (c *Client) Archives(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/storage/redo/archives", nil)
}

func (c *Client) LogBuffer(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, "/storage/redo/logbuffer")
}

func (c *Client) RedoManagement(ctx context.Context) (map[string]any, error) {
	return c.object(ctx, "/storage/redo/management")
}

func (c *Client) AddRedoGroup(ctx context.Context, req models.RedoGroupAddRequest) error {
	return c.action(ctx, "/storage/redo/group/add", req)
}

func (c *Client) DropRedoGroup(ctx context.Context, req models.RedoGroupDropRequest) error {
	return c.action(ctx, "/storage/redo/group/drop", req)
}

func (c *Client) AddRedoMember(ctx context.Context, req models.RedoMemberAddRequest) error {
	return c.action(ctx, "/storage/redo/member/add", req)
}

func (c *Client) DropRedoMember(ctx context.Context, req models.RedoMemberDropRequest) error {
	return c.action(ctx, "/storage/redo/member/drop", req)
}

// SwitchLogfile forces a log switch.
func (c *Client) SwitchLogfile(ctx context.Context) error {
	return c.action(ctx, "/storage/redo/switch", nil)
}
