package readmodel

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSystemSchemas = []string{"SYS", "SYSTEM", "DBSNMP"}

func intPtr(v int) *int { return &v }

func sampleSessions() []Session {
	return []Session{
		{SID: 1, Serial: 10, Username: "", Status: StatusActive, Type: "BACKGROUND", WaitClass: "Idle", Event: "pmon timer"},
		{SID: 12, Serial: 3, Username: "SYS", Status: StatusActive, Type: "USER", WaitClass: "User I/O", Event: "db file sequential read"},
		{SID: 45, Serial: 901, Username: "SCOTT", Status: StatusInactive, Type: "USER", WaitClass: "Idle", Event: "SQL*Net message from client"},
		{SID: 77, Serial: 2, Username: "HR", Status: StatusKilled, Type: "USER", WaitClass: "Other"},
		{SID: 78, Serial: 5, Username: "APP", Status: StatusActive, Type: "USER", WaitClass: "Application", Event: "enq: TX - row lock contention", BlockingSession: intPtr(45), ParallelSlaves: 4},
		{SID: 99, Serial: 1, Username: "DBSNMP", Status: StatusSniped, Type: "USER"},
	}
}

func allFilterCombinations() []SessionFilters {
	var out []SessionFilters
	for mask := 0; mask < 32; mask++ {
		out = append(out, SessionFilters{
			ShowInactive:   mask&1 != 0,
			ShowBackground: mask&2 != 0,
			ShowSystem:     mask&4 != 0,
			ShowIdleWaits:  mask&8 != 0,
			ShowKilled:     mask&16 != 0,
			SystemSchemas:  testSystemSchemas,
		})
	}
	return out
}

// hiddenBy evaluates each flag independently of the rule table.
func hiddenBy(s Session, f SessionFilters) bool {
	if !f.ShowInactive && s.Status == "INACTIVE" {
		return true
	}
	if !f.ShowBackground && s.Type == "BACKGROUND" {
		return true
	}
	if !f.ShowSystem && s.Username != "" && containsFold(testSystemSchemas, s.Username) {
		return true
	}
	if !f.ShowIdleWaits && s.WaitClass == "Idle" {
		return true
	}
	if !f.ShowKilled && (s.Status == "KILLED" || s.Status == "SNIPED") {
		return true
	}
	return false
}

func TestFilterSessions_ExcludesExactlyHiddenRows(t *testing.T) {
	sessions := sampleSessions()
	for _, f := range allFilterCombinations() {
		got := FilterSessions(sessions, f)

		var want []Session
		for _, s := range sessions {
			if !hiddenBy(s, f) {
				want = append(want, s)
			}
		}
		assert.ElementsMatch(t, want, got, "filters %+v", f)
	}
}

func TestFilterSessions_AllOnKeepsEverything(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	statuses := []string{StatusActive, StatusInactive, StatusKilled, StatusSniped}
	types := []string{"USER", "BACKGROUND"}
	users := []string{"", "SYS", "SCOTT", "APP"}
	waits := []string{"Idle", "User I/O", ""}

	for round := 0; round < 50; round++ {
		n := rng.Intn(40)
		sessions := make([]Session, n)
		for i := range sessions {
			sessions[i] = Session{
				SID:       rng.Intn(1000),
				Status:    statuses[rng.Intn(len(statuses))],
				Type:      types[rng.Intn(len(types))],
				Username:  users[rng.Intn(len(users))],
				WaitClass: waits[rng.Intn(len(waits))],
			}
		}
		f := AllFiltersOn()
		f.SystemSchemas = testSystemSchemas
		assert.Equal(t, n, len(FilterSessions(sessions, f)))
	}
}

func TestFilterSessions_Search(t *testing.T) {
	f := AllFiltersOn()

	f.Search = "scott"
	got := FilterSessions(sampleSessions(), f)
	require.Len(t, got, 1)
	assert.Equal(t, 45, got[0].SID)

	f.Search = "row lock"
	got = FilterSessions(sampleSessions(), f)
	require.Len(t, got, 1)
	assert.Equal(t, 78, got[0].SID)

	f.Search = "7"
	got = FilterSessions(sampleSessions(), f)
	assert.Len(t, got, 2)

	client := Session{SID: 301, Username: "APP", Program: "sqlplus@host", Machine: "web01", OSUser: "oracle"}
	for _, q := range []string{"SQLPLUS", "Web01", "ORACLE"} {
		f.Search = q
		assert.Len(t, FilterSessions([]Session{client}, f), 1, q)
	}
	f.Search = "batch"
	assert.Empty(t, FilterSessions([]Session{client}, f))
}

func TestCountSessions_ActiveMatchesNaiveFilter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	statuses := []string{StatusActive, StatusInactive, StatusKilled, StatusSniped}
	for round := 0; round < 100; round++ {
		sessions := make([]Session, rng.Intn(30))
		for i := range sessions {
			sessions[i] = Session{SID: i, Status: statuses[rng.Intn(len(statuses))]}
		}

		naive := 0
		for _, s := range sessions {
			if s.Status == "ACTIVE" {
				naive++
			}
		}
		c := CountSessions(sessions)
		assert.Equal(t, naive, c.Active)
		assert.Equal(t, len(sessions), c.Total)
		assert.LessOrEqual(t, c.Active+c.Inactive, c.Total)
	}
}

func TestCountSessions_Sample(t *testing.T) {
	c := CountSessions(sampleSessions())
	assert.Equal(t, SessionCounts{
		Total:      6,
		Active:     3,
		Inactive:   1,
		Killed:     2,
		Blocked:    1,
		Parallel:   1,
		Background: 1,
	}, c)
}

func TestBuildSessionWhere_AllOn(t *testing.T) {
	f := AllFiltersOn()
	assert.Equal(t, "WHERE s.sid IS NOT NULL", BuildSessionWhere(f))
}

func TestBuildSessionWhere_SingleToggleAddsOneCondition(t *testing.T) {
	toggles := map[string]func(*SessionFilters, bool){
		"inactive":   func(f *SessionFilters, v bool) { f.ShowInactive = v },
		"background": func(f *SessionFilters, v bool) { f.ShowBackground = v },
		"system":     func(f *SessionFilters, v bool) { f.ShowSystem = v },
		"idle":       func(f *SessionFilters, v bool) { f.ShowIdleWaits = v },
		"killed":     func(f *SessionFilters, v bool) { f.ShowKilled = v },
	}

	for _, base := range allFilterCombinations() {
		for name, set := range toggles {
			on := base
			set(&on, true)
			off := base
			set(&off, false)

			onLines := strings.Split(BuildSessionWhere(on), "\n")
			offLines := strings.Split(BuildSessionWhere(off), "\n")
			require.Equal(t, len(onLines)+1, len(offLines), "toggle %s from %+v", name, base)

			// Removing the single extra line from the "off" clause restores the "on" clause.
			extra := -1
			for i := range offLines {
				candidate := append(append([]string{}, offLines[:i]...), offLines[i+1:]...)
				if strings.Join(candidate, "\n") == strings.Join(onLines, "\n") {
					extra = i
					break
				}
			}
			assert.NotEqual(t, -1, extra, "toggle %s did not add exactly one condition", name)
		}
	}
}

func TestBuildSessionWhere_SystemList(t *testing.T) {
	f := AllFiltersOn()
	f.ShowSystem = false
	f.SystemSchemas = []string{"sys", "O'NEIL"}
	assert.Equal(t,
		"WHERE s.sid IS NOT NULL\n  AND (s.username IS NULL OR s.username NOT IN ('SYS', 'O''NEIL'))",
		BuildSessionWhere(f))
}

func TestBuildSessionWhere_EmptySystemListHidesNobody(t *testing.T) {
	f := AllFiltersOn()
	f.ShowSystem = false
	assert.Equal(t, "WHERE s.sid IS NOT NULL\n  AND 1 = 1", BuildSessionWhere(f))

	users := []Session{{SID: 5, Username: "SCOTT"}, {SID: 6, Username: "SYS"}}
	assert.Len(t, FilterSessions(users, f), 2)
}

func TestNormalizeSession_Aliases(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"snake", map[string]any{"sid": 5, "serial#": 77, "sql_id": "abc", "inst_id": 2}},
		{"camel", map[string]any{"sid": "5", "serial": "77", "sqlId": "abc", "instId": 2.0}},
		{"upper", map[string]any{"SID": float64(5), "SERIAL#": int64(77), "SQL_ID": []byte("abc"), "INST_ID": "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NormalizeSession(tt.raw)
			assert.Equal(t, 5, s.SID)
			assert.Equal(t, 77, s.Serial)
			assert.Equal(t, "abc", s.SQLID)
			assert.Equal(t, 2, s.InstID)
		})
	}
}

func TestNormalizeSession_Defaults(t *testing.T) {
	s := NormalizeSession(map[string]any{"sid": 9, "status": "active", "blocking_session": nil})
	assert.Equal(t, 1, s.InstID)
	assert.Equal(t, StatusActive, s.Status)
	assert.False(t, s.IsBlocked())

	s = NormalizeSession(map[string]any{"sid": 9, "blocking_session": float64(12)})
	require.True(t, s.IsBlocked())
	assert.Equal(t, 12, *s.BlockingSession)
}

func TestStorageMetrics_Partition(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 100; round++ {
		blocks := make([]ExtentBlock, rng.Intn(50))
		var total, used int64
		for i := range blocks {
			status := ExtentFree
			if rng.Intn(2) == 0 {
				status = ExtentUsed
			}
			size := int64(rng.Intn(1 << 20))
			blocks[i] = ExtentBlock{SizeKB: size, Status: status}
			total += size
			if status == ExtentUsed {
				used += size
			}
		}

		m := StorageMetrics(blocks)
		assert.Equal(t, total, m.TotalKB)
		assert.Equal(t, used, m.UsedKB)
		assert.Equal(t, m.TotalKB, m.UsedKB+m.FreeKB)
	}
}

func TestStorageMetrics_Empty(t *testing.T) {
	m := StorageMetrics(nil)
	assert.Equal(t, StorageSummary{}, m)
}

func TestTablespaceUsage(t *testing.T) {
	used, pct := TablespaceUsage(200, 50)
	assert.Equal(t, 150.0, used)
	assert.Equal(t, 75.0, pct)

	_, pct = TablespaceUsage(0, 0)
	assert.Equal(t, 0.0, pct)
}

func TestCountJobs(t *testing.T) {
	jobs := []LegacyJob{
		{Job: 1, Broken: "N"},
		{Job: 2, Broken: "Y", Failures: 16},
		{Job: 3, Broken: "N", Failures: 2},
	}
	assert.Equal(t, JobCounts{Total: 3, Broken: 1, Failing: 1, Healthy: 1}, CountJobs(jobs))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantLen   int
		wantPage  int
		wantSize  int
		wantPages int
	}{
		{"first page", 1, 10, 10, 1, 10, 3},
		{"partial last page", 3, 10, 5, 3, 10, 3},
		{"beyond range", 10, 10, 0, 10, 10, 3},
		{"invalid page clamps", 0, 10, 10, 1, 10, 3},
		{"invalid size defaults", 1, 0, 10, 1, DefaultPageSize, 3},
		{"huge page number", 1844674407370955162, 10, 0, 1844674407370955162, 10, 3},
		{"huge page size", 1, math.MaxInt, 25, 1, math.MaxInt, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(items, tt.page, tt.pageSize)
			assert.Len(t, p.Items, tt.wantLen)
			assert.NotNil(t, p.Items)
			assert.Equal(t, 25, p.Total)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}
