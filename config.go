package dbc

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

const (
	EnvDisable   = "DBC_DISABLE"    // EnvDisable is a boolean that disables checks at startup.
	EnvTraceback = "DBC_TRACEBACK"  // EnvTraceback is passed to SetTraceback if it's set.
	EnvVarFormat = "DBC_VAR_FORMAT" // EnvVarFormat is either "inline" or "indented".
)

var (
	EnvTrue  = []string{"1", "yes", "true", "on"}  // EnvTrue are the values considered "true" for EnvDisable, and can be changed.
	EnvFalse = []string{"0", "no", "false", "off"} // EnvFalse are the values considered "false" for EnvDisable, and can be changed.
)

// lookupEnv gets a trimmed environment variable value, comparing keys case-insensitive.
// An exact match of key wins, otherwise the last case-insensitive match is used.
// Empty values are treated as unset.
func lookupEnv(key string) (string, bool) {
	var (
		val   string
		found bool
	)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.EqualFold(k, key) {
			continue
		}
		val, found = v, true
		if k == key {
			break
		}
	}
	if !found {
		return "", false
	}
	val = strings.TrimSpace(val)
	return val, len(val) > 0
}

func containsFold(vals []string, s string) bool {
	return slices.ContainsFunc(vals, func(e string) bool {
		return strings.EqualFold(e, s)
	})
}

// ConfigureFromEnv applies settings from the [EnvDisable], [EnvTraceback], and [EnvVarFormat] environment variables.
// It's intended to be called once at startup, so process-wide state is only changed explicitly.
//
// Variables that aren't set are ignored.
// Values that can't be interpreted are skipped and reported in the returned error, which wraps [ErrConfig].
func ConfigureFromEnv() error {
	var errs []error
	if val, ok := lookupEnv(EnvDisable); ok {
		switch {
		case containsFold(EnvTrue, val):
			Disable()
		case containsFold(EnvFalse, val):
			Enable()
		default:
			errs = append(errs, fmt.Errorf("%w: %s is not a boolean: '%s'", ErrConfig, EnvDisable, val))
		}
	}
	if val, ok := lookupEnv(EnvTraceback); ok {
		SetTraceback(val)
	}
	if val, ok := lookupEnv(EnvVarFormat); ok {
		format, err := ParseVarFormat(val)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvVarFormat, err))
		} else {
			SetVarFormat(format)
		}
	}
	return errors.Join(errs...)
}
