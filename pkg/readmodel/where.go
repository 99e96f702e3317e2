package readmodel

import "strings"

// SessionBaseCondition is always present in the generated clause.
const SessionBaseCondition = "s.sid IS NOT NULL"

// SessionConditions lists the base condition followed by one condition per
// disabled flag, in a fixed order.
func SessionConditions(f SessionFilters) []string {
	conds := []string{SessionBaseCondition}
	for _, r := range sessionRules {
		if !r.enabled(f) {
			conds = append(conds, r.condition(f))
		}
	}
	return conds
}

// BuildSessionWhere renders SessionConditions as a WHERE clause, one
// condition per line.
func BuildSessionWhere(f SessionFilters) string {
	conds := SessionConditions(f)
	var b strings.Builder
	b.WriteString("WHERE ")
	b.WriteString(conds[0])
	for _, c := range conds[1:] {
		b.WriteString("\n  AND ")
		b.WriteString(c)
	}
	return b.String()
}
