package readmodel

import "math"

// Extent status values in the tablespace map.
const (
	ExtentUsed = "USED"
	ExtentFree = "FREE"
)

// ExtentBlock is one run of blocks in a datafile, either allocated to a
// segment or free.
type ExtentBlock struct {
	FileID        int    `json:"file_id"`
	BlockID       int64  `json:"block_id"`
	Blocks        int64  `json:"blocks"`
	SizeKB        int64  `json:"size_kb"`
	Status        string `json:"status"`
	Owner         string `json:"owner,omitempty"`
	SegmentName   string `json:"segment_name,omitempty"`
	SegmentType   string `json:"segment_type,omitempty"`
	PartitionName string `json:"partition_name,omitempty"`
}

// NormalizeExtent maps a raw extent-map row onto ExtentBlock.
func NormalizeExtent(raw map[string]any) ExtentBlock {
	return ExtentBlock{
		FileID:        Int(raw, "file_id", "FILE_ID"),
		BlockID:       int64(Int(raw, "block_id", "BLOCK_ID")),
		Blocks:        int64(Int(raw, "blocks", "BLOCKS")),
		SizeKB:        int64(Int(raw, "size_kb", "SIZE_KB")),
		Status:        String(raw, "status", "STATUS"),
		Owner:         String(raw, "owner", "OWNER"),
		SegmentName:   String(raw, "segment_name", "SEGMENT_NAME"),
		SegmentType:   String(raw, "segment_type", "SEGMENT_TYPE"),
		PartitionName: String(raw, "partition_name", "PARTITION_NAME"),
	}
}

// StorageSummary aggregates an extent map. UsedKB + FreeKB == TotalKB.
type StorageSummary struct {
	TotalKB int64   `json:"total_kb"`
	UsedKB  int64   `json:"used_kb"`
	FreeKB  int64   `json:"free_kb"`
	UsedPct float64 `json:"used_pct"`
	Extents int     `json:"extents"`
}

// StorageMetrics partitions the extent map by status. Any entry not marked
// USED counts as free.
func StorageMetrics(blocks []ExtentBlock) StorageSummary {
	var m StorageSummary
	for _, b := range blocks {
		m.TotalKB += b.SizeKB
		if b.Status == ExtentUsed {
			m.UsedKB += b.SizeKB
		}
	}
	m.FreeKB = m.TotalKB - m.UsedKB
	m.Extents = len(blocks)
	m.UsedPct = Percent(float64(m.UsedKB), float64(m.TotalKB))
	return m
}

// Percent returns part/whole*100 rounded to two decimals, or 0 for an empty whole.
func Percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(part/whole*10000) / 100
}

// TablespaceUsage derives used MB and percentage from total and free MB.
func TablespaceUsage(totalMB, freeMB float64) (usedMB, usedPct float64) {
	usedMB = totalMB - freeMB
	return usedMB, Percent(usedMB, totalMB)
}
