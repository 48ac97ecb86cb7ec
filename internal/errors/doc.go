// Package errors provides typed errors with exit codes for forage-sshd.
//
// # Error Types
//
// LauncherError wraps an error with an exit code:
//
//	type LauncherError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess       = 0 // Success (never observed on the handoff path)
//	ExitGeneralError  = 1 // General/unknown errors, or port occupied for "probe"
//	ExitProbeFailed   = 2 // Listening sockets could not be queried
//	ExitHandoffFailed = 3 // Target binary missing or exec failed
//	ExitConfigError   = 4 // Configuration error
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
