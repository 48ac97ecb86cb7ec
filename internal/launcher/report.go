package launcher

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/logging"
)

// PrintReport writes the user-facing status lines for a launch.
func PrintReport(r *Report, pattern string) {
	if !r.InUse {
		logging.UserInfo("Port %d is free", r.Port)
	} else {
		logging.UserWarning("Port %d is in use", r.Port)
		for _, l := range r.Listeners {
			logging.UserWarning("  %s", l)
		}
	}

	if r.Reclaim != nil {
		switch {
		case r.Reclaim.Empty():
			logging.UserInfo("No process matching %q to stop", pattern)
		case len(r.Reclaim.Failures) > 0:
			logging.UserWarning("Signalled %d of %d processes matching %q", len(r.Reclaim.Signalled), len(r.Reclaim.Matched), pattern)
		default:
			logging.UserInfo("Signalled %d processes matching %q", len(r.Reclaim.Signalled), pattern)
		}
		for _, pid := range r.Unreclaimed() {
			logging.UserWarning("pid %d still holds port %d and was not signalled", pid, r.Port)
		}
		logging.UserInfo("Waited %s for the port to be released", r.Settled)
	}

	logging.UserSuccess("Starting %s", r.CommandLine())
}
