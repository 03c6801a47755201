// Package env reads configuration defaults from the process environment.
// Lookups are case-insensitive, a set-but-blank variable counts as unset,
// and a value that fails to parse falls back to the caller's default rather
// than failing. This suits optional knobs like history size or log level,
// where a bad value should degrade and not abort startup.
package env

import (
	"os"
	"strconv"
	"strings"
)

// lookup finds key in the environment, comparing case-insensitive. Values
// are trimmed, and a blank value reports as unset.
func lookup(key string) (string, bool) {
	for _, pair := range os.Environ() {
		k, v, found := strings.Cut(pair, "=")
		if !found || !strings.EqualFold(k, key) {
			continue
		}
		v = strings.TrimSpace(v)
		if len(v) == 0 {
			return "", false
		}
		return v, true
	}
	return "", false
}

// Val returns the named variable's value, or defaultVal when the variable is
// unset or blank.
func Val(key, defaultVal string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return defaultVal
}

var (
	TrueValues  = []string{"1", "yes", "true", "on"}  // TrueValues are the strings [Bool] accepts as true, and can be changed.
	FalseValues = []string{"0", "no", "false", "off"} // FalseValues are the strings [Bool] accepts as false, and can be changed.
)

// Bool interprets the named variable against [TrueValues] and [FalseValues],
// comparing case-insensitive. The defaultVal is returned when the variable
// is unset, blank, or matches neither set.
func Bool(key string, defaultVal bool) bool {
	v, ok := lookup(key)
	if !ok {
		return defaultVal
	}
	for _, t := range TrueValues {
		if strings.EqualFold(v, t) {
			return true
		}
	}
	for _, f := range FalseValues {
		if strings.EqualFold(v, f) {
			return false
		}
	}
	return defaultVal
}

// Int interprets the named variable as a base 10 integer, returning
// defaultVal when the variable is unset, blank, or not an integer.
func Int(key string, defaultVal int64) int64 {
	v, ok := lookup(key)
	if !ok {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}
