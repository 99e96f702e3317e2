package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// render writes v as JSON or YAML, or calls table for the default format.
func render(w io.Writer, v any, table func(tw *tabwriter.Writer)) error {
	switch strings.ToLower(outputFormat) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (table, json or yaml)", outputFormat)
	}
}

// rowsTable prints raw view rows with their columns in sorted order.
func rowsTable(rows []map[string]any) func(tw *tabwriter.Writer) {
	return func(tw *tabwriter.Writer) {
		if len(rows) == 0 {
			fmt.Fprintln(tw, "(no rows)")
			return
		}
		seen := map[string]bool{}
		var cols []string
		for _, r := range rows {
			for k := range r {
				if !seen[k] {
					seen[k] = true
					cols = append(cols, k)
				}
			}
		}
		sort.Strings(cols)
		fmt.Fprintln(tw, strings.ToUpper(strings.Join(cols, "\t")))
		for _, r := range rows {
			vals := make([]string, len(cols))
			for i, c := range cols {
				if v, ok := r[c]; ok && v != nil {
					vals[i] = fmt.Sprint(v)
				}
			}
			fmt.Fprintln(tw, strings.Join(vals, "\t"))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
