package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Finding is one healthcheck recommendation.
type Finding struct {
	Category        string `json:"category"`
	Item            string `json:"item"`
	Status          string `json:"status"`
	Current         string `json:"current"`
	Suggested       string `json:"suggested"`
	Description     string `json:"description"`
	FixSQL          string `json:"fix_sql"`
	RestartRequired bool   `json:"restart_required"`
}

// ParamCheck is a parameter the healthcheck compares against a suggestion.
type ParamCheck struct {
	Name        string
	Suggested   string
	Scope       string // BOTH or SPFILE
	Description string
}

// ParamValue is the current setting of a checked parameter.
type ParamValue struct {
	Value     string
	IsDefault bool
}

// HealthInput is what the healthcheck reads from the database.
type HealthInput struct {
	Params     map[string]ParamValue
	Profiles   map[string]map[string]string
	AuditTrail string
}

// DefaultParamChecks are evaluated in this order.
var DefaultParamChecks = []ParamCheck{
	{Name: "undo_retention", Suggested: "3600", Scope: "BOTH", Description: "Retention too low for consistent reads."},
	{Name: "open_cursors", Suggested: "2600", Scope: "BOTH", Description: "Session might reach cursor limit."},
	{Name: "audit_sys_operations", Suggested: "FALSE", Scope: "SPFILE", Description: "SYS Audit can be verbose."},
	{Name: "parallel_max_servers", Suggested: "16", Scope: "BOTH", Description: "Suggested for multi-core performance."},
	{Name: "cursor_sharing", Suggested: "EXACT", Scope: "BOTH", Description: "Standard cursor sharing."},
}

// differs compares numerically when both sides are integers and
// case-insensitively otherwise. A numeric value above the suggestion passes.
func differs(current, suggested string) bool {
	cur, err1 := strconv.Atoi(strings.TrimSpace(current))
	sug, err2 := strconv.Atoi(suggested)
	if err1 == nil && err2 == nil {
		return cur < sug
	}
	return !strings.EqualFold(current, suggested)
}

// EvaluateHealth turns the collected settings into findings: parameters
// first, then profiles by name, then the audit trail.
func EvaluateHealth(in HealthInput, checks []ParamCheck) []Finding {
	findings := make([]Finding, 0)

	for _, c := range checks {
		cur, ok := in.Params[c.Name]
		if !ok || !differs(cur.Value, c.Suggested) {
			continue
		}
		status := "Recommended"
		if cur.IsDefault {
			status = "Warning"
		}
		findings = append(findings, Finding{
			Category:        "Parameters",
			Item:            c.Name,
			Status:          status,
			Current:         cur.Value,
			Suggested:       c.Suggested,
			Description:     c.Description,
			FixSQL:          fmt.Sprintf("ALTER SYSTEM SET %s=%s SCOPE=%s;", c.Name, c.Suggested, strings.ToLower(c.Scope)),
			RestartRequired: c.Scope == "SPFILE",
		})
	}

	names := make([]string, 0, len(in.Profiles))
	for name := range in.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		limits := in.Profiles[name]
		attempts, ok := limits["FAILED_LOGIN_ATTEMPTS"]
		if !ok {
			attempts = "10"
		}
		life, ok := limits["PASSWORD_LIFE_TIME"]
		if !ok {
			life = "180"
		}
		if attempts == "UNLIMITED" && life == "UNLIMITED" {
			continue
		}
		findings = append(findings, Finding{
			Category:    "Security",
			Item:        "Profile " + name,
			Status:      "Recommended",
			Current:     fmt.Sprintf("Login Attempts: %s, Life: %sd", attempts, life),
			Suggested:   "UNLIMITED",
			Description: "Restrictive security policies can cause unexpected lockouts.",
			FixSQL:      fmt.Sprintf("ALTER PROFILE %s LIMIT FAILED_LOGIN_ATTEMPTS UNLIMITED PASSWORD_LIFE_TIME UNLIMITED;", name),
		})
	}

	if in.AuditTrail != "" && !strings.EqualFold(in.AuditTrail, "NONE") {
		findings = append(findings, Finding{
			Category:        "Audit",
			Item:            "Audit Trail",
			Status:          "Notice",
			Current:         in.AuditTrail,
			Suggested:       "NONE",
			Description:     "Auditing is active. Ensure you purge AUD$ regularly or disable if not required.",
			FixSQL:          "ALTER SYSTEM SET audit_trail=NONE SCOPE=SPFILE;",
			RestartRequired: true,
		})
	}
	return findings
}
