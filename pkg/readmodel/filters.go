package readmodel

import (
	"strconv"
	"strings"
)

// SessionFilters are the user-toggled visibility flags of the sessions view.
// A true flag shows the category; a false flag hides it.
type SessionFilters struct {
	ShowInactive   bool   `json:"show_inactive" form:"show_inactive"`
	ShowBackground bool   `json:"show_background" form:"show_background"`
	ShowSystem     bool   `json:"show_system" form:"show_system"`
	ShowIdleWaits  bool   `json:"show_idle" form:"show_idle"`
	ShowKilled     bool   `json:"show_killed" form:"show_killed"`
	Search         string `json:"search,omitempty" form:"search"`

	// SystemSchemas decides which usernames ShowSystem hides.
	SystemSchemas []string `json:"-" form:"-"`
}

// AllFiltersOn returns filters that hide nothing.
func AllFiltersOn() SessionFilters {
	return SessionFilters{
		ShowInactive:   true,
		ShowBackground: true,
		ShowSystem:     true,
		ShowIdleWaits:  true,
		ShowKilled:     true,
	}
}

// sessionRule pairs a visibility flag with the predicate it hides and the
// SQL condition that keeps the complement.
type sessionRule struct {
	name      string
	enabled   func(SessionFilters) bool
	hides     func(Session, SessionFilters) bool
	condition func(SessionFilters) string
}

// sessionRules is ordered; BuildSessionWhere emits conditions in this order.
var sessionRules = []sessionRule{
	{
		name:    "inactive",
		enabled: func(f SessionFilters) bool { return f.ShowInactive },
		hides:   func(s Session, _ SessionFilters) bool { return s.Status == StatusInactive },
		condition: func(SessionFilters) string {
			return "s.status <> 'INACTIVE'"
		},
	},
	{
		name:    "background",
		enabled: func(f SessionFilters) bool { return f.ShowBackground },
		hides:   func(s Session, _ SessionFilters) bool { return s.Type == "BACKGROUND" },
		condition: func(SessionFilters) string {
			return "s.type <> 'BACKGROUND'"
		},
	},
	{
		name:    "system",
		enabled: func(f SessionFilters) bool { return f.ShowSystem },
		hides: func(s Session, f SessionFilters) bool {
			return s.Username != "" && containsFold(f.SystemSchemas, s.Username)
		},
		condition: func(f SessionFilters) string {
			// No schemas means nothing to hide; the line stays so toggling
			// still adds exactly one condition.
			if len(f.SystemSchemas) == 0 {
				return "1 = 1"
			}
			return "(s.username IS NULL OR s.username NOT IN (" + quoteList(f.SystemSchemas) + "))"
		},
	},
	{
		name:    "idle",
		enabled: func(f SessionFilters) bool { return f.ShowIdleWaits },
		hides:   func(s Session, _ SessionFilters) bool { return strings.EqualFold(s.WaitClass, "Idle") },
		condition: func(SessionFilters) string {
			return "NVL(s.wait_class, '-') <> 'Idle'"
		},
	},
	{
		name:    "killed",
		enabled: func(f SessionFilters) bool { return f.ShowKilled },
		hides: func(s Session, _ SessionFilters) bool {
			return s.Status == StatusKilled || s.Status == StatusSniped
		},
		condition: func(SessionFilters) string {
			return "s.status NOT IN ('KILLED', 'SNIPED')"
		},
	},
}

// Visible reports whether a session survives every disabled flag and the search text.
func (f SessionFilters) Visible(s Session) bool {
	for _, r := range sessionRules {
		if !r.enabled(f) && r.hides(s, f) {
			return false
		}
	}
	return MatchesSearch(s, f.Search)
}

// FilterSessions returns the sessions visible under f, preserving order.
func FilterSessions(sessions []Session, f SessionFilters) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if f.Visible(s) {
			out = append(out, s)
		}
	}
	return out
}

// MatchesSearch matches username, event, program, machine and OS user
// case-insensitively and the sid as a substring.
func MatchesSearch(s Session, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strconv.Itoa(s.SID), query) {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{s.Username, s.Event, s.Program, s.Machine, s.OSUser} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + strings.ReplaceAll(strings.ToUpper(item), "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}
