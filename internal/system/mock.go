package system

import (
	"fmt"
	"os/exec"
	"sync"
)

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records every ReplaceProcess call for verification.
	Commands []MockCommand

	// Binaries maps names to resolved paths. Names absent from the map are
	// reported as not found by LookPath and ReplaceProcess.
	Binaries map[string]string

	// ReplaceProcessErr is returned by ReplaceProcess if set.
	ReplaceProcessErr error
}

// MockCommand records an executed command.
type MockCommand struct {
	Name string
	Args []string
}

// NewMockExecutor creates a new MockExecutor that knows the given binaries.
func NewMockExecutor(binaries ...string) *MockExecutor {
	m := &MockExecutor{
		Commands: make([]MockCommand, 0),
		Binaries: make(map[string]string),
	}
	for _, b := range binaries {
		m.Binaries[b] = b
	}
	return m
}

func (m *MockExecutor) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path, ok := m.Binaries[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// ReplaceProcess records the call. Unlike the real executor it returns
// nil on success, since the test process cannot be replaced.
func (m *MockExecutor) ReplaceProcess(name string, args ...string) error {
	if _, err := m.LookPath(name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Commands = append(m.Commands, MockCommand{Name: name, Args: args})

	if m.ReplaceProcessErr != nil {
		return fmt.Errorf("exec %s: %w", name, m.ReplaceProcessErr)
	}
	return nil
}

// LastCommand returns the most recently replaced command.
func (m *MockExecutor) LastCommand() (MockCommand, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return MockCommand{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}
