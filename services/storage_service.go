package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/utils"
)

// TablespaceMap is the block layout of one tablespace.
type TablespaceMap struct {
	Tablespace string                   `json:"tablespace"`
	Extents    []readmodel.ExtentBlock  `json:"extents"`
	Metrics    readmodel.StorageSummary `json:"metrics"`
}

// StorageService covers tablespaces, datafiles and instance storage views.
type StorageService interface {
	Tablespaces(ctx context.Context) ([]map[string]any, error)
	Datafiles(ctx context.Context) ([]map[string]any, error)
	TablespaceMap(ctx context.Context, tablespace string, fileID int) (*TablespaceMap, error)
	TopSegments(ctx context.Context, tablespace string) ([]map[string]any, error)
	ControlFiles(ctx context.Context) ([]map[string]any, error)
	SysauxOccupants(ctx context.Context) ([]map[string]any, error)
	UndoStats(ctx context.Context) ([]map[string]any, error)
	TempUsage(ctx context.Context) ([]map[string]any, error)
	Checkpoint(ctx context.Context) (map[string]any, error)
	Charts(ctx context.Context) (*StorageCharts, error)
	ForceCheckpoint(ctx context.Context) error
	ResizeDatafile(ctx context.Context, req models.DatafileResizeRequest) error
	AddDatafile(ctx context.Context, req models.DatafileAddRequest) error
	ReorgSQL(block readmodel.ExtentBlock, tablespace string) (string, error)
}

type storageService struct {
	oracleBase
}

func NewStorageService(deps OracleDeps) StorageService {
	return &storageService{oracleBase{deps}}
}

func (s *storageService) Tablespaces(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "tablespaces", tablespacesQuery)
}

func (s *storageService) Datafiles(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "datafiles", datafilesQuery)
}

func (s *storageService) TablespaceMap(ctx context.Context, tablespace string, fileID int) (*TablespaceMap, error) {
	tablespace = strings.ToUpper(strings.TrimSpace(tablespace))
	if tablespace == "" {
		return nil, utils.Invalidf("tablespace is required")
	}
	args := []any{sql.Named("ts_used", tablespace), sql.Named("ts_free", tablespace)}
	usedFile, freeFile := "", ""
	if fileID > 0 {
		usedFile, freeFile = "AND file_id = :file_used", "AND file_id = :file_free"
		args = append(args, sql.Named("file_used", fileID), sql.Named("file_free", fileID))
	}
	rows, err := s.rows(ctx, "tablespace_map", fmt.Sprintf(tablespaceMapQuery, usedFile, freeFile), args...)
	if err != nil {
		return nil, err
	}
	extents := make([]readmodel.ExtentBlock, 0, len(rows))
	for _, r := range rows {
		extents = append(extents, readmodel.NormalizeExtent(r))
	}
	return &TablespaceMap{
		Tablespace: tablespace,
		Extents:    extents,
		Metrics:    readmodel.StorageMetrics(extents),
	}, nil
}

func (s *storageService) TopSegments(ctx context.Context, tablespace string) ([]map[string]any, error) {
	tablespace = strings.ToUpper(strings.TrimSpace(tablespace))
	if tablespace == "" {
		return nil, utils.Invalidf("tablespace is required")
	}
	return s.rows(ctx, "top_segments", topSegmentsQuery, sql.Named("ts", tablespace))
}

func (s *storageService) ControlFiles(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "control_files", controlFilesQuery)
}

func (s *storageService) SysauxOccupants(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "sysaux_occupants", sysauxOccupantsQuery)
}

func (s *storageService) UndoStats(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "undo_stats", undoStatsQuery)
}

func (s *storageService) TempUsage(ctx context.Context) ([]map[string]any, error) {
	return s.rows(ctx, "temp_usage", tempUsageQuery)
}

func (s *storageService) Checkpoint(ctx context.Context) (map[string]any, error) {
	rows, err := s.rows(ctx, "checkpoint", checkpointQuery)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return map[string]any{}, nil
	}
	return rows[0], nil
}

func (s *storageService) ForceCheckpoint(ctx context.Context) error {
	return s.exec(ctx, activity.CategoryStorage, scriptgen.CheckpointSQL)
}

func (s *storageService) ResizeDatafile(ctx context.Context, req models.DatafileResizeRequest) error {
	stmt, err := scriptgen.ResizeDatafileSQL(req.FileID, req.NewSizeMB)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.exec(ctx, activity.CategoryStorage, stmt)
}

func (s *storageService) AddDatafile(ctx context.Context, req models.DatafileAddRequest) error {
	stmt, err := scriptgen.AddDatafileSQL(req.TablespaceName, req.FileName, req.SizeMB)
	if err != nil {
		return utils.Invalid(err)
	}
	return s.exec(ctx, activity.CategoryStorage, stmt)
}

func (s *storageService) ReorgSQL(block readmodel.ExtentBlock, tablespace string) (string, error) {
	if block.SegmentName == "" || block.Owner == "" {
		return "", utils.Invalidf("owner and segment_name are required")
	}
	return scriptgen.ReorgSQL(block, tablespace), nil
}
