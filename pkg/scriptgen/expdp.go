package scriptgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidOptions is wrapped by every Validate failure.
var ErrInvalidOptions = errors.New("invalid options")

// Data Pump export modes.
const (
	ExportSchema = "SCHEMA"
	ExportTable  = "TABLE"
	ExportFull   = "FULL"
)

// ExpdpOptions are the Data Pump export form fields.
type ExpdpOptions struct {
	Mode                   string   `json:"mode" validate:"omitempty,oneof=SCHEMA TABLE FULL"`
	Objects                string   `json:"objects"`
	Directory              string   `json:"directory" validate:"required"`
	Parallel               int      `json:"parallel"`
	Compression            bool     `json:"compression"`
	ExcludeInternalSchemas bool     `json:"exclude_internal_schemas"`
	SystemSchemas          []string `json:"system_schemas,omitempty"`
	ExcludeStatistics      bool     `json:"exclude_statistics"`
	ClusterN               bool     `json:"cluster_n"`
	FileSizeGB             string   `json:"file_size_gb"`
	UseParfile             bool     `json:"use_parfile"`
}

// Validate performs the required-field checks. Numeric fields are not range checked.
func (o ExpdpOptions) Validate() error {
	if strings.TrimSpace(o.Directory) == "" {
		return fmt.Errorf("%w: directory is required", ErrInvalidOptions)
	}
	if o.mode() != ExportFull && strings.TrimSpace(o.Objects) == "" {
		return fmt.Errorf("%w: %s mode requires objects", ErrInvalidOptions, strings.ToLower(o.mode()))
	}
	return nil
}

func (o ExpdpOptions) mode() string {
	if o.Mode == "" {
		return ExportSchema
	}
	return o.Mode
}

// exclusions joins the EXCLUDE filters in their fixed order.
func (o ExpdpOptions) exclusions() []string {
	var ex []string
	if o.ExcludeInternalSchemas && len(o.SystemSchemas) > 0 {
		ex = append(ex, `SCHEMA:"IN ('`+strings.Join(o.SystemSchemas, "','")+`')"`)
	}
	if o.ExcludeStatistics {
		ex = append(ex, "STATISTICS")
	}
	return ex
}

// GenerateExpdp renders the expdp command line, or the parfile form when
// UseParfile is set.
func GenerateExpdp(o ExpdpOptions) string {
	if o.UseParfile {
		return "expdp system/password@db parfile=export.par\n\n# --- export.par content ---\n" + Parfile(o)
	}

	mode := o.mode()
	lower := strings.ToLower(mode)

	var b strings.Builder
	b.WriteString("expdp system/password@db directory=" + o.Directory)
	switch mode {
	case ExportSchema:
		b.WriteString(" schemas=" + o.Objects)
	case ExportFull:
		b.WriteString(" full=Y")
	case ExportTable:
		b.WriteString(" tables=" + o.Objects)
	}
	b.WriteString(" dumpfile=" + lower + "_%U.dmp logfile=" + lower + ".log")

	if o.Parallel > 1 {
		b.WriteString(" parallel=" + strconv.Itoa(o.Parallel))
	}
	if o.Compression {
		b.WriteString(" compression=ALL")
	}
	if ex := o.exclusions(); len(ex) > 0 {
		b.WriteString(" EXCLUDE=" + strings.Join(ex, ","))
	}
	if o.ClusterN {
		b.WriteString(" CLUSTER=N")
	}
	if o.FileSizeGB != "" {
		b.WriteString(" FILESIZE=" + o.FileSizeGB + "G")
	}
	return b.String()
}

// Parfile renders the parameter-file body, one upper-case key per line.
func Parfile(o ExpdpOptions) string {
	mode := o.mode()
	lower := strings.ToLower(mode)

	lines := []string{"DIRECTORY=" + o.Directory}
	switch mode {
	case ExportSchema:
		lines = append(lines, "SCHEMAS="+o.Objects)
	case ExportFull:
		lines = append(lines, "FULL=Y")
	case ExportTable:
		lines = append(lines, "TABLES="+o.Objects)
	}
	lines = append(lines, "DUMPFILE="+lower+"_%U.dmp", "LOGFILE="+lower+".log")

	if o.Parallel > 1 {
		lines = append(lines, "PARALLEL="+strconv.Itoa(o.Parallel))
	}
	if o.Compression {
		lines = append(lines, "COMPRESSION=ALL")
	}
	if ex := o.exclusions(); len(ex) > 0 {
		lines = append(lines, "EXCLUDE="+strings.Join(ex, ","))
	}
	if o.ClusterN {
		lines = append(lines, "CLUSTER=N")
	}
	if o.FileSizeGB != "" {
		lines = append(lines, "FILESIZE="+o.FileSizeGB+"G")
	}
	return strings.Join(lines, "\n")
}
