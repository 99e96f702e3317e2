package scriptgen

import (
	"fmt"

	"oraconsoleapi/pkg/readmodel"
)

// KillSessionSQL is the statement the server executes. The instance suffix
// is only added for RAC targets.
func KillSessionSQL(sid, serial, instID int, rac bool) string {
	if rac && instID > 0 {
		return fmt.Sprintf("ALTER SYSTEM KILL SESSION '%d,%d,@%d' IMMEDIATE", sid, serial, instID)
	}
	return fmt.Sprintf("ALTER SYSTEM KILL SESSION '%d,%d' IMMEDIATE", sid, serial)
}

// KillCommand is the copy-pasteable pair shown for one selected session.
type KillCommand struct {
	SID    int    `json:"sid"`
	Serial int    `json:"serial"`
	InstID int    `json:"inst_id"`
	Oracle string `json:"oracle"`
	OS     string `json:"os,omitempty"`
}

// KillCommands renders the SQL kill and, when the server process id is
// known, the OS kill for each session in selection order.
func KillCommands(sessions []readmodel.Session) []KillCommand {
	out := make([]KillCommand, 0, len(sessions))
	for _, s := range sessions {
		inst := s.InstID
		if inst == 0 {
			inst = 1
		}
		cmd := KillCommand{
			SID:    s.SID,
			Serial: s.Serial,
			InstID: inst,
			Oracle: fmt.Sprintf("alter system kill session '%d,%d,@%d' immediate;", s.SID, s.Serial, inst),
		}
		if s.SPID != "" {
			cmd.OS = "kill -9 " + s.SPID
		}
		out = append(out, cmd)
	}
	return out
}
