package scriptgen

import (
	"fmt"
	"strings"
)

// QuoteIdent upper-cases name and wraps it as an Oracle quoted identifier.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(strings.ToUpper(name), `"`, `""`) + `"`
}

// QuoteLiteral wraps s as a single-quoted SQL string literal.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func positive(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be greater than 0", ErrInvalidOptions, field)
	}
	return nil
}

func nonEmpty(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidOptions, field)
	}
	return nil
}

// AddRedoGroupSQL adds an online redo group to thread, optionally naming its
// first member.
func AddRedoGroupSQL(thread, sizeMB int, memberPath string) (string, error) {
	if err := positive("thread", thread); err != nil {
		return "", err
	}
	if err := positive("size_mb", sizeMB); err != nil {
		return "", err
	}
	if memberPath != "" {
		return fmt.Sprintf("ALTER DATABASE ADD LOGFILE THREAD %d %s SIZE %dM", thread, QuoteLiteral(memberPath), sizeMB), nil
	}
	return fmt.Sprintf("ALTER DATABASE ADD LOGFILE THREAD %d SIZE %dM", thread, sizeMB), nil
}

// DropRedoGroupSQL drops an online redo group.
func DropRedoGroupSQL(group int) (string, error) {
	if err := positive("group_id", group); err != nil {
		return "", err
	}
	return fmt.Sprintf("ALTER DATABASE DROP LOGFILE GROUP %d", group), nil
}

func AddRedoMemberSQL(group int, memberPath string) (string, error) {
	if err := positive("group_id", group); err != nil {
		return "", err
	}
	if err := nonEmpty("member_path", memberPath); err != nil {
		return "", err
	}
	return fmt.Sprintf("ALTER DATABASE ADD LOGFILE MEMBER %s TO GROUP %d", QuoteLiteral(memberPath), group), nil
}

func DropRedoMemberSQL(memberPath string) (string, error) {
	if err := nonEmpty("member_path", memberPath); err != nil {
		return "", err
	}
	return "ALTER DATABASE DROP LOGFILE MEMBER " + QuoteLiteral(memberPath), nil
}

// Log switch statements, tried in order.
const (
	ArchiveLogCurrentSQL = "ALTER SYSTEM ARCHIVE LOG CURRENT"
	SwitchLogfileSQL     = "ALTER SYSTEM SWITCH LOGFILE"
	CheckpointSQL        = "ALTER SYSTEM CHECKPOINT"
)

// ResizeDatafileSQL resizes a datafile by file number.
func ResizeDatafileSQL(fileID, newSizeMB int) (string, error) {
	if err := positive("file_id", fileID); err != nil {
		return "", err
	}
	if err := positive("new_size_mb", newSizeMB); err != nil {
		return "", err
	}
	return fmt.Sprintf("ALTER DATABASE DATAFILE %d RESIZE %dM", fileID, newSizeMB), nil
}

// AddDatafileSQL adds a datafile to a tablespace.
func AddDatafileSQL(tablespace, fileName string, sizeMB int) (string, error) {
	if err := nonEmpty("tablespace_name", tablespace); err != nil {
		return "", err
	}
	if err := nonEmpty("file_name", fileName); err != nil {
		return "", err
	}
	if err := positive("size_mb", sizeMB); err != nil {
		return "", err
	}
	return fmt.Sprintf("ALTER TABLESPACE %s ADD DATAFILE %s SIZE %dM", QuoteIdent(tablespace), QuoteLiteral(fileName), sizeMB), nil
}

// RunJobPLSQL forces a legacy DBMS_JOB to run now.
func RunJobPLSQL(job int) (string, error) {
	if err := positive("job", job); err != nil {
		return "", err
	}
	return fmt.Sprintf("BEGIN dbms_job.run(%d); COMMIT; END;", job), nil
}

// BrokenJobPLSQL marks a legacy job broken or clears the flag.
func BrokenJobPLSQL(job int, broken bool) (string, error) {
	if err := positive("job", job); err != nil {
		return "", err
	}
	val := "FALSE"
	if broken {
		val = "TRUE"
	}
	return fmt.Sprintf("BEGIN dbms_job.broken(%d, %s); COMMIT; END;", job, val), nil
}

func RemoveJobPLSQL(job int) (string, error) {
	if err := positive("job", job); err != nil {
		return "", err
	}
	return fmt.Sprintf("BEGIN dbms_job.remove(%d); COMMIT; END;", job), nil
}

// SubmitJobPLSQL submits a legacy job. The body is bound as :what; nextDate
// uses YYYY-MM-DD HH24:MI:SS and defaults to SYSDATE.
func SubmitJobPLSQL(nextDate, interval string) string {
	next := "SYSDATE"
	if nextDate != "" {
		next = "TO_DATE(" + QuoteLiteral(nextDate) + ", 'YYYY-MM-DD HH24:MI:SS')"
	}
	iv := "NULL"
	if interval != "" {
		iv = QuoteLiteral(interval)
	}
	return "DECLARE\n  job_no BINARY_INTEGER;\nBEGIN\n  dbms_job.submit(job_no, :what, " + next + ", " + iv + ");\n  COMMIT;\nEND;"
}
