package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a positive path identifier.
func ParseID(name, val string) (uint, error) {
	id, err := strconv.ParseUint(val, 10, 32)
	if err != nil || id == 0 {
		return 0, Invalidf("invalid %s %q: must be a positive integer", name, val)
	}
	return uint(id), nil
}

// ParseInt parses a required integer path or query value.
func ParseInt(name, val string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, Invalidf("invalid %s %q: must be an integer", name, val)
	}
	return n, nil
}

// OptionalInt parses val, returning nil when it is empty.
func OptionalInt(name, val string) (*int, error) {
	if strings.TrimSpace(val) == "" {
		return nil, nil
	}
	n, err := ParseInt(name, val)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// IntOrDefault parses val, falling back to def when empty or malformed.
func IntOrDefault(val string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
		return n
	}
	return def
}

// BoolOrDefault parses val with strconv.ParseBool, falling back to def.
func BoolOrDefault(val string, def bool) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
		return b
	}
	return def
}
