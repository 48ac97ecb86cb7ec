package launcher

import (
	"context"
	"os"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/port"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/reclaim"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/system"
)

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Launcher holds the collaborators for one launch.
type Launcher struct {
	Config   *config.LauncherConfig
	Prober   port.Prober
	Killer   reclaim.Killer
	Executor system.CommandExecutor
	Sleep    SleepFunc

	// SelfPID is never signalled during reclaim.
	SelfPID int32
}

// Option is a function that configures the Launcher
type Option func(*Launcher)

// WithProber sets a custom prober
func WithProber(p port.Prober) Option {
	return func(l *Launcher) {
		l.Prober = p
	}
}

// WithKiller sets a custom killer
func WithKiller(k reclaim.Killer) Option {
	return func(l *Launcher) {
		l.Killer = k
	}
}

// WithExecutor sets a custom executor
func WithExecutor(e system.CommandExecutor) Option {
	return func(l *Launcher) {
		l.Executor = e
	}
}

// WithSleep sets a custom sleep function
func WithSleep(s SleepFunc) Option {
	return func(l *Launcher) {
		l.Sleep = s
	}
}

// New creates a Launcher backed by the OS unless overridden by opts.
func New(cfg *config.LauncherConfig, opts ...Option) *Launcher {
	l := &Launcher{
		Config:   cfg,
		Prober:   port.SystemProber{},
		Killer:   reclaim.SystemKiller{},
		Executor: system.DefaultExecutor(),
		Sleep:    Sleep,
		SelfPID:  int32(os.Getpid()),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Report describes what happened before handoff.
type Report struct {
	Port      int
	InUse     bool
	Listeners []port.Listener

	// Reclaim is nil when the port was free.
	Reclaim *reclaim.Result
	Settled time.Duration

	Binary string
	Args   []string
}

// CommandLine returns the handoff command, shell-quoted for display.
func (r *Report) CommandLine() string {
	return shellquote.Join(append([]string{r.Binary}, r.Args...)...)
}

// Unreclaimed returns the listener owners that reclaim did not signal.
// Listeners with unknown owners are not included.
func (r *Report) Unreclaimed() []int32 {
	if r.Reclaim == nil {
		return nil
	}
	signalled := make(map[int32]bool, len(r.Reclaim.Signalled))
	for _, pid := range r.Reclaim.Signalled {
		signalled[pid] = true
	}

	var pids []int32
	for _, pid := range port.PIDs(r.Listeners) {
		if !signalled[pid] {
			pids = append(pids, pid)
		}
	}
	return pids
}

// Probe lists the listeners on the configured port.
func (l *Launcher) Probe(ctx context.Context) (bool, []port.Listener, error) {
	inUse, listeners, err := port.Probe(ctx, l.Prober, l.Config.Port)
	if err != nil {
		return false, nil, errors.ProbeFailed(l.Config.Port, err)
	}
	logging.Debug("probed port", "port", l.Config.Port, "in_use", inUse, "listeners", len(listeners))
	return inUse, listeners, nil
}

// Reclaim signals the processes matching the configured pattern.
func (l *Launcher) Reclaim(ctx context.Context) *reclaim.Result {
	sig, err := l.Config.SignalNum()
	if err != nil {
		logging.Info("skipping reclaim", "error", err)
		return &reclaim.Result{Failures: map[int32]string{}}
	}

	return reclaim.Reclaim(ctx, l.Killer, reclaim.Options{
		Pattern:          l.Config.ProcessPattern,
		MatchFullCommand: l.Config.MatchFullCommand,
		Signal:           sig,
		ExcludePIDs:      []int32{l.SelfPID},
	})
}

// Settle waits for the configured settle delay.
func (l *Launcher) Settle(ctx context.Context) error {
	logging.Debug("settling", "delay", l.Config.SettleDelay)
	return l.Sleep(ctx, l.Config.SettleDelay)
}

// Plan returns the binary and arguments handoff will use.
func (l *Launcher) Plan() (string, []string, error) {
	args, err := l.Config.Args()
	if err != nil {
		return "", nil, errors.ConfigError("invalid handoff arguments", err)
	}
	return l.Config.Binary, args, nil
}

// Handoff replaces the current process with binary. It only returns on
// failure.
func (l *Launcher) Handoff(binary string, args []string) error {
	logging.Debug("handing off", "binary", binary, "args", args)
	if err := l.Executor.ReplaceProcess(binary, args...); err != nil {
		return errors.HandoffFailed(binary, err)
	}
	return nil
}

// Prepare runs probe, reclaim, and settle, and returns the report for the
// upcoming handoff.
func (l *Launcher) Prepare(ctx context.Context) (*Report, error) {
	binary, args, err := l.Plan()
	if err != nil {
		return nil, err
	}

	report := &Report{Port: l.Config.Port, Binary: binary, Args: args}

	report.InUse, report.Listeners, err = l.Probe(ctx)
	if err != nil {
		return nil, err
	}

	if !report.InUse {
		return report, nil
	}

	report.Reclaim = l.Reclaim(ctx)
	for _, pid := range report.Unreclaimed() {
		logging.Warn("listener owner was not signalled", "pid", pid, "pattern", l.Config.ProcessPattern)
	}

	if err := l.Settle(ctx); err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "interrupted while waiting for port release", err)
	}
	report.Settled = l.Config.SettleDelay

	return report, nil
}

// DryRun probes the port and reports what Run would do, without
// signalling anything or exec'ing.
func (l *Launcher) DryRun(ctx context.Context) (*Report, error) {
	binary, args, err := l.Plan()
	if err != nil {
		return nil, err
	}

	report := &Report{Port: l.Config.Port, Binary: binary, Args: args}

	report.InUse, report.Listeners, err = l.Probe(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := l.Executor.LookPath(binary); err != nil {
		return report, errors.HandoffFailed(binary, err)
	}

	return report, nil
}

// Run frees the port and hands off to the target binary. On success it
// does not return; with a mock executor it returns the report and nil.
func (l *Launcher) Run(ctx context.Context) (*Report, error) {
	report, err := l.Prepare(ctx)
	if err != nil {
		return nil, err
	}

	PrintReport(report, l.Config.ProcessPattern)

	if err := l.Handoff(report.Binary, report.Args); err != nil {
		return report, err
	}
	return report, nil
}
