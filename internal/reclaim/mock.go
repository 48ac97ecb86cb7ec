package reclaim

import (
	"context"
	"sync"
	"syscall"
)

// MockKiller implements Killer for testing.
type MockKiller struct {
	mu sync.Mutex

	// Procs is the process table returned by Processes.
	Procs []Process

	// ListErr is returned by Processes if set.
	ListErr error

	// SignalErrs maps PIDs to the error Signal returns for them.
	SignalErrs map[int32]error

	// Signals records every Signal call.
	Signals []MockSignal
}

// MockSignal records a delivered signal.
type MockSignal struct {
	PID    int32
	Signal syscall.Signal
}

// NewMockKiller returns a MockKiller with the given process table.
func NewMockKiller(procs ...Process) *MockKiller {
	return &MockKiller{
		Procs:      procs,
		SignalErrs: make(map[int32]error),
	}
}

func (m *MockKiller) Processes(ctx context.Context) ([]Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Procs, nil
}

func (m *MockKiller) Signal(ctx context.Context, pid int32, sig syscall.Signal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Signals = append(m.Signals, MockSignal{PID: pid, Signal: sig})
	return m.SignalErrs[pid]
}

// SignalledPIDs returns the PIDs Signal was called with, in call order.
func (m *MockKiller) SignalledPIDs() []int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	pids := make([]int32, 0, len(m.Signals))
	for _, s := range m.Signals {
		pids = append(pids, s.PID)
	}
	return pids
}
