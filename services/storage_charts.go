package services

import (
	"context"
	"database/sql"
	"math"

	"oraconsoleapi/pkg/readmodel"
)

// FRAUsage is the fill level of the fast recovery area.
type FRAUsage struct {
	Name          string  `json:"name"`
	LimitMB       float64 `json:"limit_mb"`
	UsedMB        float64 `json:"used_mb"`
	ReclaimableMB float64 `json:"reclaimable_mb"`
	FreeMB        float64 `json:"free_mb"`
	UsedPct       float64 `json:"used_pct"`
	Files         int     `json:"files"`
}

// SpaceUsage is a total/used/free triple in MB. Name is empty for totals.
type SpaceUsage struct {
	Name    string  `json:"tablespace_name,omitempty"`
	TotalMB float64 `json:"total_mb"`
	UsedMB  float64 `json:"used_mb"`
	FreeMB  float64 `json:"free_mb"`
}

// ChartPoint is one labelled slice of a chart.
type ChartPoint struct {
	Name string  `json:"name"`
	MB   float64 `json:"mb"`
}

// StorageCharts feeds the storage overview. A section whose query fails is
// left empty so one missing privilege does not hide the whole page.
type StorageCharts struct {
	FRA            *FRAUsage    `json:"fra"`
	Datafiles      *SpaceUsage  `json:"datafiles"`
	SGA            []ChartPoint `json:"sga"`
	SGATotalMB     float64      `json:"sga_total_mb"`
	PGA            []ChartPoint `json:"pga"`
	Undo           []SpaceUsage `json:"undo"`
	Temp           []SpaceUsage `json:"temp"`
	TopTablespaces []ChartPoint `json:"top_tablespaces"`
}

func (s *storageService) Charts(ctx context.Context) (*StorageCharts, error) {
	db, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	out := &StorageCharts{
		SGA:            []ChartPoint{},
		PGA:            []ChartPoint{},
		Undo:           []SpaceUsage{},
		Temp:           []SpaceUsage{},
		TopTablespaces: []ChartPoint{},
	}

	if r := s.firstRow(ctx, db, "chart_fra", chartFRAQuery); r != nil {
		limit, used := readmodel.Float(r, "limit_mb"), readmodel.Float(r, "used_mb")
		out.FRA = &FRAUsage{
			Name:          readmodel.String(r, "name"),
			LimitMB:       limit,
			UsedMB:        used,
			ReclaimableMB: readmodel.Float(r, "reclaimable_mb"),
			FreeMB:        math.Max(0, limit-used),
			UsedPct:       readmodel.Percent(used, limit),
			Files:         readmodel.Int(r, "number_of_files"),
		}
	}
	if r := s.firstRow(ctx, db, "chart_datafiles", chartDatafilesQuery); r != nil {
		u := spaceUsage(r)
		out.Datafiles = &u
	}

	if rows, err := s.rowsOn(ctx, db, "chart_sga", chartSGAQuery); err == nil {
		for _, p := range chartPoints(rows) {
			if p.MB > 0 {
				out.SGA = append(out.SGA, p)
			}
		}
	}
	if r := s.firstRow(ctx, db, "chart_sga_total", chartSGATotalQuery); r != nil {
		out.SGATotalMB = readmodel.Float(r, "mb")
	}
	if rows, err := s.rowsOn(ctx, db, "chart_pga", chartPGAQuery); err == nil {
		out.PGA = chartPoints(rows)
	}

	if rows, err := s.rowsOn(ctx, db, "chart_undo", chartUndoQuery); err == nil {
		for _, r := range rows {
			out.Undo = append(out.Undo, spaceUsage(r))
		}
	}
	out.Temp = s.tempUsage(ctx, db)

	if rows, err := s.rowsOn(ctx, db, "chart_top_tablespaces", chartTopTablespacesQuery); err == nil {
		out.TopTablespaces = chartPoints(rows)
	}
	return out, nil
}

// tempUsage prefers the live utilization view and falls back to the temp
// file sizes, reported as entirely free, when that view is empty.
func (s *storageService) tempUsage(ctx context.Context, db *sql.DB) []SpaceUsage {
	out := []SpaceUsage{}
	rows, err := s.rowsOn(ctx, db, "chart_temp", chartTempQuery)
	if err == nil && len(rows) > 0 {
		for _, r := range rows {
			out = append(out, spaceUsage(r))
		}
		return out
	}
	files, err := s.rowsOn(ctx, db, "chart_temp_files", chartTempFilesQuery)
	if err != nil {
		return out
	}
	for _, r := range files {
		total := readmodel.Float(r, "total_mb")
		out = append(out, SpaceUsage{Name: readmodel.String(r, "tablespace_name"), TotalMB: total, FreeMB: total})
	}
	return out
}

func (s *storageService) firstRow(ctx context.Context, db *sql.DB, op, query string) map[string]any {
	rows, err := s.rowsOn(ctx, db, op, query)
	if err != nil || len(rows) == 0 {
		return nil
	}
	return rows[0]
}

func spaceUsage(r map[string]any) SpaceUsage {
	return SpaceUsage{
		Name:    readmodel.String(r, "tablespace_name"),
		TotalMB: readmodel.Float(r, "total_mb"),
		UsedMB:  readmodel.Float(r, "used_mb"),
		FreeMB:  readmodel.Float(r, "free_mb"),
	}
}

func chartPoints(rows []map[string]any) []ChartPoint {
	out := make([]ChartPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, ChartPoint{Name: readmodel.String(r, "name"), MB: readmodel.Float(r, "mb")})
	}
	return out
}
