// Package reclaim asks processes believed to hold a port to exit.
//
// Reclaim works like pkill: every process whose name matches a regular
// expression receives a signal (SIGTERM by default). With MatchFullCommand
// the expression is matched against the full command line instead, like
// pkill -f. The launcher's own PID is always excluded.
//
// Reclaim is best-effort. It does not wait for the processes to exit and it
// never returns an error: a failed process listing, no matching process, or
// a refused signal are all logged and reported in the Result, and the caller
// carries on.
package reclaim
