// Package envconfig reads extension settings from the environment.
// Values are read on every call so tests can override them with t.Setenv.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/extension/internal/tensor"
)

// LogLevel returns the log level.
// Configurable via BORN_DEBUG: 0/false = INFO (default), 1/true = DEBUG, 2 = TRACE.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("BORN_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

// Device returns the device new CLI tensors are placed on.
// Configurable via BORN_DEVICE; unknown names fall back to CPU.
func Device() tensor.Device {
	s := Var("BORN_DEVICE")
	d, err := tensor.ParseDevice(s)
	if err != nil {
		slog.Warn("invalid environment variable, using default", "key", "BORN_DEVICE", "value", s, "default", tensor.CPU)
	}
	return d
}

// MaxAllocBytes returns the per-tensor allocation limit, 0 meaning unlimited.
// Configurable via BORN_MAX_ALLOC_BYTES.
var MaxAllocBytes = Uint64("BORN_MAX_ALLOC_BYTES", 0)

// Uint64 returns a reader for an unsigned integer variable.
func Uint64(key string, defaultValue uint64) func() uint64 {
	return func() uint64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// EnvVar describes one setting.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every setting with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"BORN_DEBUG":           {"BORN_DEBUG", LogLevel(), "Show additional debug information (e.g. BORN_DEBUG=1, 2 for dispatch tracing)"},
		"BORN_DEVICE":          {"BORN_DEVICE", Device(), "Device for tensors created by the CLI (default cpu)"},
		"BORN_MAX_ALLOC_BYTES": {"BORN_MAX_ALLOC_BYTES", MaxAllocBytes(), "Per-tensor allocation limit in bytes (default unlimited)"},
	}
}

// Values returns every setting rendered as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Var returns an environment variable stripped of whitespace and quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
