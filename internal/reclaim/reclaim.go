package reclaim

import (
	"context"
	"regexp"
	"sort"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/logging"
)

// Process is a running process as seen by a Killer.
type Process struct {
	PID     int32
	Name    string
	Cmdline string
}

// Killer lists and signals processes.
type Killer interface {
	Processes(ctx context.Context) ([]Process, error)
	Signal(ctx context.Context, pid int32, sig syscall.Signal) error
}

// SystemKiller implements Killer with the OS process table.
type SystemKiller struct{}

func (SystemKiller) Processes(ctx context.Context) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			// Exited between listing and inspection.
			continue
		}
		cmdline, _ := p.CmdlineWithContext(ctx)
		result = append(result, Process{PID: p.Pid, Name: name, Cmdline: cmdline})
	}
	return result, nil
}

func (SystemKiller) Signal(ctx context.Context, pid int32, sig syscall.Signal) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return err
	}
	return p.SendSignalWithContext(ctx, sig)
}

// Options selects the processes to signal.
type Options struct {
	Pattern          string
	MatchFullCommand bool
	Signal           syscall.Signal
	ExcludePIDs      []int32
}

// Result reports what Reclaim did.
type Result struct {
	Matched   []int32
	Signalled []int32
	Failures  map[int32]string
}

// Empty reports whether no process matched.
func (r *Result) Empty() bool {
	return len(r.Matched) == 0
}

// Match returns the processes selected by opts, ordered by PID.
func Match(procs []Process, opts Options) ([]Process, error) {
	re, err := regexp.Compile(opts.Pattern)
	if err != nil {
		return nil, err
	}

	excluded := make(map[int32]bool, len(opts.ExcludePIDs))
	for _, pid := range opts.ExcludePIDs {
		excluded[pid] = true
	}

	var matched []Process
	for _, p := range procs {
		if excluded[p.PID] {
			continue
		}
		subject := p.Name
		if opts.MatchFullCommand {
			subject = p.Cmdline
		}
		if re.MatchString(subject) {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].PID < matched[j].PID })
	return matched, nil
}

// Reclaim signals every process matching opts. It never fails.
func Reclaim(ctx context.Context, killer Killer, opts Options) *Result {
	result := &Result{Failures: make(map[int32]string)}
	log := logging.With("pattern", opts.Pattern, "signal", opts.Signal.String())

	procs, err := killer.Processes(ctx)
	if err != nil {
		log.Info("could not list processes, skipping reclaim", "error", err)
		return result
	}

	matched, err := Match(procs, opts)
	if err != nil {
		log.Info("invalid process pattern, skipping reclaim", "error", err)
		return result
	}

	if len(matched) == 0 {
		log.Info("no matching process to reclaim")
		return result
	}

	for _, p := range matched {
		result.Matched = append(result.Matched, p.PID)
		if err := killer.Signal(ctx, p.PID, opts.Signal); err != nil {
			log.Info("signal not delivered", "pid", p.PID, "name", p.Name, "error", err)
			result.Failures[p.PID] = err.Error()
			continue
		}
		log.Debug("signal delivered", "pid", p.PID, "name", p.Name)
		result.Signalled = append(result.Signalled, p.PID)
	}

	return result
}
