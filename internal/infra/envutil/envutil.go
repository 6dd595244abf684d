// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru-code/brandgen/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining meta.EnvPrefix with the given suffix.
// Example: HostEnvKey("OUTPUT_DIR") returns "BRANDGEN_OUTPUT_DIR".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + strings.ToUpper(strings.TrimSpace(suffix))
}

// GetHostEnv retrieves a host-level environment variable, trimmed.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

// HostEnvOr returns the host-level variable or fallback when it is unset or blank.
func HostEnvOr(suffix, fallback string) string {
	if value := GetHostEnv(suffix); value != "" {
		return value
	}
	return fallback
}
