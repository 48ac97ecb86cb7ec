// Package port answers whether a TCP port is already bound by a listener.
//
// # Probing
//
// A Prober lists the listening sockets on a port. SystemProber asks the OS
// through gopsutil, which reads /proc/net/tcp and /proc/net/tcp6 on Linux,
// so both IPv4 and IPv6 listeners count:
//
//	inUse, listeners, err := port.Probe(ctx, port.SystemProber{}, 22)
//
// Owning PIDs are only filled in when the caller may inspect the owning
// process (usually root); otherwise PID is 0.
//
// # Testing
//
// MockProber returns canned listeners or an error and counts calls.
package port
