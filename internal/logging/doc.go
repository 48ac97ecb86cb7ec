// Package logging provides logging utilities for forage-sshd.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted status lines for whoever reads the container log
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings.
// Text output is rendered by charmbracelet/log; --json switches to slog's
// JSON handler:
//
//	logging.Debug("probing port", "port", port)
//	logging.Warn("signal failed", "pid", pid, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Port %d is free", port)
//	logging.UserSuccess("Handing off to %s", binary)
//	logging.UserWarning("Port %d is in use, reclaiming", port)
//	logging.UserError("Failed to exec: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators, colored with lipgloss when the
// destination is a terminal:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
