// Package system provides abstractions for OS operations to enable testing.
package system

import (
	"os"
	"strings"
)

// CommandExecutor abstracts process replacement for testability.
type CommandExecutor interface {
	// LookPath resolves name to an executable path.
	LookPath(name string) (string, error)

	// ReplaceProcess replaces the current process with the given command (exec syscall).
	// It does not return on success.
	ReplaceProcess(name string, args ...string) error
}

var defaultExecutor CommandExecutor = &osExecutor{}

// DefaultExecutor returns the default CommandExecutor implementation.
func DefaultExecutor() CommandExecutor {
	return defaultExecutor
}

// SetDefaultExecutor sets the default CommandExecutor (useful for testing).
func SetDefaultExecutor(exec CommandExecutor) {
	defaultExecutor = exec
}

// ResetDefaults restores the default OS implementations.
func ResetDefaults() {
	defaultExecutor = &osExecutor{}
}

// unsafeEnvVars are stripped before handing the environment to another binary.
var unsafeEnvVars = map[string]bool{
	"LD_PRELOAD":      true,
	"LD_LIBRARY_PATH": true,
	"LD_AUDIT":        true,
}

// SafeEnviron returns the current environment without loader-injection variables.
func SafeEnviron() []string {
	return filterEnv(os.Environ())
}

func filterEnv(env []string) []string {
	filtered := make([]string, 0, len(env))
	for _, kv := range env {
		key, _, _ := strings.Cut(kv, "=")
		if unsafeEnvVars[key] {
			continue
		}
		filtered = append(filtered, kv)
	}
	return filtered
}
