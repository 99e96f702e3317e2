package scriptgen

import (
	"strings"

	"oraconsoleapi/pkg/readmodel"
)

// ReorgSQL returns the statement that relocates the segment owning a USED
// extent into tablespace, or rebuilds it in place when tablespace is empty.
// FREE extents yield an empty string.
func ReorgSQL(block readmodel.ExtentBlock, tablespace string) string {
	if block.Status != readmodel.ExtentUsed {
		return ""
	}
	segType := strings.ToUpper(block.SegmentType)
	if strings.Contains(segType, "TEMPORARY") || segType == "TEMP_SEGMENT" {
		return "-- Temporary segments (TEMP_SEGMENT) are managed by the database and cannot be moved for reorganization."
	}

	name := QuoteIdent(block.Owner) + "." + QuoteIdent(block.SegmentName)
	ts := ""
	if tablespace != "" {
		ts = " TABLESPACE " + QuoteIdent(tablespace)
	}

	var stmt string
	switch {
	case strings.Contains(segType, "PARTITION"):
		part := QuoteIdent(block.PartitionName)
		if strings.HasPrefix(segType, "INDEX") {
			stmt = "ALTER INDEX " + name + " REBUILD PARTITION " + part + ts + " ONLINE;"
		} else {
			stmt = "ALTER TABLE " + name + " MOVE PARTITION " + part + ts + " ONLINE;"
		}
	case segType == "INDEX":
		stmt = "ALTER INDEX " + name + " REBUILD" + ts + " ONLINE;"
	case strings.HasPrefix(segType, "LOB"):
		stmt = "ALTER TABLE " + name + " MOVE" + ts + " ONLINE; -- Note: Consider MOVE LOB for specific columns if needed"
	default:
		stmt = "ALTER TABLE " + name + " MOVE" + ts + " ONLINE;"
	}
	return "-- Actionable SQL for " + name + "\n" + stmt
}
