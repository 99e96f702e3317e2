package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/pkg/scriptgen"
)

func instQuery(instID int) url.Values {
	if instID <= 0 {
		return nil
	}
	return url.Values{"inst_id": {strconv.Itoa(instID)}}
}

// Sessions lists sessions with the server-side filters applied. instID 0
// means all instances.
func (c *Client) Sessions(ctx context.Context, instID int, f readmodel.SessionFilters) ([]readmodel.Session, error) {
	q := url.Values{
		"show_inactive":   {strconv.FormatBool(f.ShowInactive)},
		"show_background": {strconv.FormatBool(f.ShowBackground)},
		"show_system":     {strconv.FormatBool(f.ShowSystem)},
		"show_idle":       {strconv.FormatBool(f.ShowIdleWaits)},
		"show_killed":     {strconv.FormatBool(f.ShowKilled)},
	}
	if instID > 0 {
		q.Set("inst_id", strconv.Itoa(instID))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	var out []readmodel.Session
	return out, c.get(ctx, "/sessions", q, &out)
}

func (c *Client) BlockingSessions(ctx context.Context, instID int) (Rows, error) {
	var out Rows
	return out, c.get(ctx, "/sessions/blocking", instQuery(instID), &out)
}

func (c *Client) ZombieSessions(ctx context.Context, instID int) (Rows, error) {
	var out Rows
	return out, c.get(ctx, "/sessions/zombies", instQuery(instID), &out)
}

func (c *Client) LongOps(ctx context.Context, instID int) (Rows, error) {
	var out Rows
	return out, c.get(ctx, "/sessions/longops", instQuery(instID), &out)
}

func (c *Client) LongOpsStats(ctx context.Context) (Rows, error) {
	var out Rows
	return out, c.get(ctx, "/sessions/longops/stats", nil, &out)
}

func (c *Client) Instances(ctx context.Context) (Rows, error) {
	var out Rows
	return out, c.get(ctx, "/sessions/instances", nil, &out)
}

// SQLText fetches the full statement text of sqlID.
func (c *Client) SQLText(ctx context.Context, sqlID string) (*SQLText, error) {
	var out SQLText
	if err := c.get(ctx, "/sessions/sql/"+escape(sqlID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Blocker returns the detail row of the session holding the lock.
func (c *Client) Blocker(ctx context.Context, sid, instID int) (map[string]any, error) {
	var out map[string]any
	return out, c.get(ctx, fmt.Sprintf("/sessions/blocker/%d", sid), instQuery(instID), &out)
}

// ObjectDDL returns DBMS_METADATA DDL for one object.
func (c *Client) ObjectDDL(ctx context.Context, objType, owner, name string) (string, error) {
	var out struct {
		DDL string `json:"ddl"`
	}
	path := "/sessions/ddl/" + escape(objType) + "/" + escape(owner) + "/" + escape(name)
	if err := c.get(ctx, path, nil, &out); err != nil {
		return "", err
	}
	return out.DDL, nil
}

// KillSession disconnects one session.
func (c *Client) KillSession(ctx context.Context, sid, serial, instID int) (*KillResult, error) {
	var out KillResult
	if err := c.post(ctx, fmt.Sprintf("/sessions/kill/%d/%d", sid, serial), instQuery(instID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// KillCommands previews kill statements for the selection without running
// them.
func (c *Client) KillCommands(ctx context.Context, sessions []readmodel.Session) ([]scriptgen.KillCommand, error) {
	rows := make([]map[string]any, 0, len(sessions))
	for _, s := range sessions {
		row := map[string]any{"sid": s.SID, "serial#": s.Serial, "inst_id": s.InstID}
		if s.SPID != "" {
			row["spid"] = s.SPID
		}
		rows = append(rows, row)
	}
	var out []scriptgen.KillCommand
	return out, c.post(ctx, "/sessions/kill-commands", nil, map[string]any{"sessions": rows}, &out)
}
