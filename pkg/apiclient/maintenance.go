package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/pkg/scriptgen"
)

// StatsFilter narrows the statistics lists.
type StatsFilter struct {
	Owner         string
	TableName     string
	ExcludeSystem bool
}

func (f StatsFilter) query() url.Values {
	q := url.Values{}
	if f.Owner != "" {
		q.Set("owner", f.Owner)
	}
	if f.TableName != "" {
		q.Set("table_name", f.TableName)
	}
	if f.ExcludeSystem {
		q.Set("exclude_system", "true")
	}
	return q
}

func (c *Client) StaleStats(ctx context.Context, f StatsFilter) (Rows, error) {
	return c.rows(ctx, "/statistics/stale", f.query())
}

func (c *Client) DMLChanges(ctx context.Context, f StatsFilter) (Rows, error) {
	return c.rows(ctx, "/statistics/dml", f.query())
}

func (c *Client) Schemas(ctx context.Context, excludeSystem bool) ([]string, error) {
	var out []string
	q := url.Values{"exclude_system": {strconv.FormatBool(excludeSystem)}}
	return out, c.get(ctx, "/statistics/schemas", q, &out)
}

func (c *Client) Tables(ctx context.Context, owner string) ([]string, error) {
	var out []string
	return out, c.get(ctx, "/statistics/tables", url.Values{"owner": {owner}}, &out)
}

// GatherStats runs DBMS_STATS on the server.
func (c *Client) GatherStats(ctx context.Context, opts scriptgen.GatherStatsOptions) (*ActionResult, error) {
	var out ActionResult
	if err := c.post(ctx, "/statistics/gather", nil, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PreviewGatherStats renders the call without running it.
func (c *Client) PreviewGatherStats(ctx context.Context, opts scriptgen.GatherStatsOptions) (*scriptgen.GatherStatsCall, error) {
	var out scriptgen.GatherStatsCall
	if err := c.post(ctx, "/statistics/gather/preview", nil, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LockStats(ctx context.Context, req models.LockStatsRequest) (*ActionResult, error) {
	var out ActionResult
	if err := c.post(ctx, "/statistics/lock", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FlushMonitoring flushes DML monitoring info so the stale list is current.
func (c *Client) FlushMonitoring(ctx context.Context) (*ActionResult, error) {
	var out ActionResult
	if err := c.post(ctx, "/statistics/flush", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LegacyJobs(ctx context.Context) ([]readmodel.LegacyJob, error) {
	var out []readmodel.LegacyJob
	return out, c.get(ctx, "/jobs/legacy", nil, &out)
}

func (c *Client) JobSummary(ctx context.Context) (*readmodel.JobCounts, error) {
	var out readmodel.JobCounts
	if err := c.get(ctx, "/jobs/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RunningJobs(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/jobs/running", nil)
}

func (c *Client) RunJob(ctx context.Context, id int) error {
	return c.action(ctx, fmt.Sprintf("/jobs/run/%d", id), nil)
}

func (c *Client) SetJobBroken(ctx context.Context, id int, broken bool) error {
	var out StatusResponse
	q := url.Values{"broken": {strconv.FormatBool(broken)}}
	return c.post(ctx, fmt.Sprintf("/jobs/broken/%d", id), q, nil, &out)
}

func (c *Client) RemoveJob(ctx context.Context, id int) error {
	var out StatusResponse
	return c.delete(ctx, fmt.Sprintf("/jobs/remove/%d", id), &out)
}

func (c *Client) SubmitJob(ctx context.Context, req models.JobSubmitRequest) error {
	return c.action(ctx, "/jobs/submit", req)
}

func (c *Client) BackupJobs(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/backups/jobs", nil)
}

func (c *Client) BackupSummary(ctx context.Context) (Rows, error) {
	return c.rows(ctx, "/backups/summary", nil)
}

func (c *Client) BackupSets(ctx context.Context, sessionKey int) (Rows, error) {
	return c.rows(ctx, fmt.Sprintf("/backups/sets/%d", sessionKey), nil)
}

func (c *Client) BackupFiles(ctx context.Context, bsKey int) (Rows, error) {
	return c.rows(ctx, fmt.Sprintf("/backups/files/%d", bsKey), nil)
}

func (c *Client) NLS(ctx context.Context) (*NLSSettings, error) {
	var out NLSSettings
	if err := c.get(ctx, "/backups/nls", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExcludedSchemas(ctx context.Context) ([]string, error) {
	var out []string
	return out, c.get(ctx, "/system/excluded-schemas", nil, &out)
}

func (c *Client) script(ctx context.Context, path string, opts any) (string, error) {
	var out Script
	if err := c.post(ctx, path, nil, opts, &out); err != nil {
		return "", err
	}
	return out.Script, nil
}

// RmanScript renders an RMAN RUN block on the server.
func (c *Client) RmanScript(ctx context.Context, opts scriptgen.RmanOptions) (string, error) {
	return c.script(ctx, "/scripts/rman", opts)
}

// ExpdpScript renders a Data Pump export command. The server fills the
// system schema list and NLS hint from the active connection.
func (c *Client) ExpdpScript(ctx context.Context, opts scriptgen.ExpdpOptions) (string, error) {
	return c.script(ctx, "/scripts/expdp", opts)
}

func (c *Client) TNSScript(ctx context.Context, opts scriptgen.TNSOptions) (string, error) {
	return c.script(ctx, "/scripts/tns", opts)
}
