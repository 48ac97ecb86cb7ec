package port

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"

	gnet "github.com/shirou/gopsutil/v4/net"
	"golang.org/x/sys/unix"
)

// Port range accepted by ValidatePort.
const (
	MinPort = 1
	MaxPort = 65535
)

const statusListen = "LISTEN"

// Listener is a socket bound in the listening state.
type Listener struct {
	Port    int
	PID     int32
	Address string
	Family  string // "tcp4" or "tcp6"
}

func (l Listener) String() string {
	addr := net.JoinHostPort(l.Address, strconv.Itoa(l.Port))
	if l.PID > 0 {
		return fmt.Sprintf("%s %s (pid %d)", l.Family, addr, l.PID)
	}
	return fmt.Sprintf("%s %s", l.Family, addr)
}

// Prober lists listening sockets.
type Prober interface {
	Listeners(ctx context.Context, port int) ([]Listener, error)
}

// SystemProber implements Prober with the OS socket table.
type SystemProber struct{}

func (SystemProber) Listeners(ctx context.Context, port int) ([]Listener, error) {
	conns, err := gnet.ConnectionsWithContext(ctx, "tcp")
	if err != nil {
		return nil, fmt.Errorf("failed to list tcp sockets: %w", err)
	}

	var listeners []Listener
	for _, c := range conns {
		if c.Status != statusListen || int(c.Laddr.Port) != port {
			continue
		}
		family := "tcp4"
		if c.Family == unix.AF_INET6 {
			family = "tcp6"
		}
		listeners = append(listeners, Listener{
			Port:    port,
			PID:     c.Pid,
			Address: c.Laddr.IP,
			Family:  family,
		})
	}

	return listeners, nil
}

// ValidatePort checks that p is a usable TCP port number.
func ValidatePort(p int) error {
	if p < MinPort || p > MaxPort {
		return fmt.Errorf("port must be between %d and %d (got %d)", MinPort, MaxPort, p)
	}
	return nil
}

// Probe reports whether port has at least one listener.
func Probe(ctx context.Context, prober Prober, port int) (bool, []Listener, error) {
	if err := ValidatePort(port); err != nil {
		return false, nil, err
	}

	listeners, err := prober.Listeners(ctx, port)
	if err != nil {
		return false, nil, err
	}

	return len(listeners) > 0, listeners, nil
}

// PIDs returns the distinct known owner PIDs of listeners in ascending order.
func PIDs(listeners []Listener) []int32 {
	seen := make(map[int32]bool)
	var pids []int32
	for _, l := range listeners {
		if l.PID <= 0 || seen[l.PID] {
			continue
		}
		seen[l.PID] = true
		pids = append(pids, l.PID)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })
	return pids
}
