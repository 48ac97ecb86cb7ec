package reclaim

import (
	"context"
	"errors"
	"os"
	"reflect"
	"syscall"
	"testing"
)

func sshdOptions() Options {
	return Options{Pattern: "sshd", Signal: syscall.SIGTERM}
}

func TestMatch(t *testing.T) {
	procs := []Process{
		{PID: 40, Name: "sshd", Cmdline: "sshd: /usr/sbin/sshd -D [listener]"},
		{PID: 12, Name: "bash", Cmdline: "bash -c exec /usr/sbin/sshd -D"},
		{PID: 7, Name: "sshd", Cmdline: "sshd: agent@pts/0"},
		{PID: 99, Name: "tmux", Cmdline: "tmux new -s forage"},
	}

	tests := []struct {
		name string
		opts Options
		want []int32
	}{
		{"by name", Options{Pattern: "sshd"}, []int32{7, 40}},
		{"by full command", Options{Pattern: "/usr/sbin/sshd", MatchFullCommand: true}, []int32{12, 40}},
		{"anchored", Options{Pattern: "^tmux$"}, []int32{99}},
		{"excluded pid", Options{Pattern: "sshd", ExcludePIDs: []int32{7}}, []int32{40}},
		{"no match", Options{Pattern: "dropbear"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, err := Match(procs, tt.opts)
			if err != nil {
				t.Fatalf("Match() error: %v", err)
			}
			var got []int32
			for _, p := range matched {
				got = append(got, p.PID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatch_InvalidPattern(t *testing.T) {
	if _, err := Match(nil, Options{Pattern: "sshd("}); err == nil {
		t.Error("Match() should reject an invalid pattern")
	}
}

func TestReclaim_SignalsMatchingProcesses(t *testing.T) {
	killer := NewMockKiller(
		Process{PID: 10, Name: "sshd"},
		Process{PID: 11, Name: "bash"},
		Process{PID: 12, Name: "sshd"},
	)

	result := Reclaim(context.Background(), killer, sshdOptions())

	if !reflect.DeepEqual(result.Matched, []int32{10, 12}) {
		t.Errorf("Matched = %v, want [10 12]", result.Matched)
	}
	if !reflect.DeepEqual(result.Signalled, []int32{10, 12}) {
		t.Errorf("Signalled = %v, want [10 12]", result.Signalled)
	}
	for _, s := range killer.Signals {
		if s.Signal != syscall.SIGTERM {
			t.Errorf("pid %d got %v, want SIGTERM", s.PID, s.Signal)
		}
	}
}

func TestReclaim_NoMatchIsNotAnError(t *testing.T) {
	killer := NewMockKiller(Process{PID: 11, Name: "bash"})

	result := Reclaim(context.Background(), killer, sshdOptions())

	if !result.Empty() {
		t.Errorf("Matched = %v, want none", result.Matched)
	}
	if len(killer.Signals) != 0 {
		t.Errorf("no signal should be sent, got %v", killer.Signals)
	}
}

func TestReclaim_ListFailureIsSwallowed(t *testing.T) {
	killer := NewMockKiller()
	killer.ListErr = errors.New("/proc not mounted")

	result := Reclaim(context.Background(), killer, sshdOptions())

	if result == nil || !result.Empty() {
		t.Errorf("Reclaim() = %+v, want empty result", result)
	}
}

func TestReclaim_SignalFailureIsRecorded(t *testing.T) {
	killer := NewMockKiller(
		Process{PID: 10, Name: "sshd"},
		Process{PID: 12, Name: "sshd"},
	)
	killer.SignalErrs[10] = syscall.EPERM

	result := Reclaim(context.Background(), killer, sshdOptions())

	if !reflect.DeepEqual(result.Signalled, []int32{12}) {
		t.Errorf("Signalled = %v, want [12]", result.Signalled)
	}
	if _, ok := result.Failures[10]; !ok {
		t.Error("Failures should record pid 10")
	}
	if !reflect.DeepEqual(killer.SignalledPIDs(), []int32{10, 12}) {
		t.Errorf("every match should be attempted, got %v", killer.SignalledPIDs())
	}
}

func TestReclaim_InvalidPatternIsSwallowed(t *testing.T) {
	killer := NewMockKiller(Process{PID: 10, Name: "sshd"})

	result := Reclaim(context.Background(), killer, Options{Pattern: "(", Signal: syscall.SIGTERM})

	if !result.Empty() {
		t.Errorf("Matched = %v, want none", result.Matched)
	}
}

func TestSystemKiller_ListsSelf(t *testing.T) {
	procs, err := SystemKiller{}.Processes(context.Background())
	if err != nil {
		t.Skipf("process listing unavailable: %v", err)
	}

	self := int32(os.Getpid())
	for _, p := range procs {
		if p.PID == self {
			return
		}
	}
	t.Errorf("own pid %d not found among %d processes", self, len(procs))
}
