package utils

import (
	"strconv"
	"strings"
)

// ParseInt returns defaultValue when s is empty or not an integer.
func ParseInt(s string, defaultValue int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}
	return v
}

// ParseOptionalInt returns nil when s is empty or not an integer.
func ParseOptionalInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

func ParseInt64(s string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
