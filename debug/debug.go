// Package debug holds stage tracing toggles read from the environment.
//
//	IDLTS_DEBUG_DETECT     version detection
//	IDLTS_DEBUG_NORMALIZE  identifier renames
//	IDLTS_DEBUG_EMIT       artifact emission
//	IDLTS_DEBUG_PATCH      raw patches and metadata overrides
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Detect    bool
	Normalize bool
	Emit      bool
	Patch     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Detect = boolEnv("IDLTS_DEBUG_DETECT")
	d.Normalize = boolEnv("IDLTS_DEBUG_NORMALIZE")
	d.Emit = boolEnv("IDLTS_DEBUG_EMIT")
	d.Patch = boolEnv("IDLTS_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Detect() bool {
	return d.Detect
}
func Normalize() bool {
	return d.Normalize
}
func Emit() bool {
	return d.Emit
}
func Patch() bool {
	return d.Patch
}

// Logf writes to stderr. Raw JSON and generic decoded values are indented.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case json.RawMessage:
			var v any
			if err := json.Unmarshal(x, &v); err != nil {
				args[i] = string(x)
				continue
			}
			args[i] = indent(v)
		case map[string]any, []any:
			args[i] = indent(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func indent(v any) string {
	d, err := json.MarshalIndent(v, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
