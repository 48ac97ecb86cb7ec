package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/port"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/reclaim"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T         *testing.T
	ConfigDir string
	Prober    *port.MockProber
	Killer    *reclaim.MockKiller
	Executor  *system.MockExecutor
	App       *app.App

	mu      sync.Mutex
	sleeps  []time.Duration
	cleanup func()
}

// NewTestEnv creates a new test environment with mock OS dependencies.
// The default sshd binary is known to the mock executor.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	configDir := filepath.Join(t.TempDir(), "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", configDir, err)
	}

	env := &TestEnv{
		T:         t,
		ConfigDir: configDir,
		Prober:    port.NewMockProber(),
		Killer:    reclaim.NewMockKiller(),
		Executor:  system.NewMockExecutor(config.DefaultBinary),
	}

	env.App = app.New(
		app.WithConfigDir(configDir),
		app.WithProber(env.Prober),
		app.WithKiller(env.Killer),
		app.WithExecutor(env.Executor),
		app.WithSleep(env.sleep),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(env.App)
	env.cleanup = func() {
		app.SetDefault(originalDefault)
	}

	return env
}

func (e *TestEnv) sleep(ctx context.Context, d time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sleeps = append(e.sleeps, d)
	return ctx.Err()
}

// Sleeps returns the settle delays requested so far.
func (e *TestEnv) Sleeps() []time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]time.Duration(nil), e.sleeps...)
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// AddProfile writes a TOML launcher profile into the config directory.
func (e *TestEnv) AddProfile(name, content string) string {
	e.T.Helper()

	path := filepath.Join(e.ConfigDir, name+".toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write profile: %v", err)
	}
	return path
}

// Occupy makes the mock prober report a listener on p owned by pid.
func (e *TestEnv) Occupy(p int, pid int32) {
	e.Prober.Result = append(e.Prober.Result, port.Listener{
		Port:    p,
		PID:     pid,
		Address: "0.0.0.0",
		Family:  "tcp4",
	})
}

// AddProcess adds a process to the mock process table.
func (e *TestEnv) AddProcess(pid int32, name string) {
	e.Killer.Procs = append(e.Killer.Procs, reclaim.Process{PID: pid, Name: name, Cmdline: name})
}
