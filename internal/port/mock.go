package port

import (
	"context"
	"sync"
)

// MockProber implements Prober for testing.
type MockProber struct {
	mu sync.Mutex

	// Result is returned for every probed port.
	Result []Listener

	// Err is returned instead of Result if set.
	Err error

	// Calls records the probed ports.
	Calls []int
}

// NewMockProber returns a MockProber reporting the given listeners.
func NewMockProber(listeners ...Listener) *MockProber {
	return &MockProber{Result: listeners}
}

func (m *MockProber) Listeners(ctx context.Context, port int) ([]Listener, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, port)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// CallCount returns the number of probes performed.
func (m *MockProber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
