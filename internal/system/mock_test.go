package system

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
)

func TestMockExecutor_LookPath(t *testing.T) {
	m := NewMockExecutor("/usr/sbin/sshd")

	path, err := m.LookPath("/usr/sbin/sshd")
	if err != nil {
		t.Fatalf("LookPath error: %v", err)
	}
	if path != "/usr/sbin/sshd" {
		t.Errorf("LookPath = %q, want %q", path, "/usr/sbin/sshd")
	}

	_, err = m.LookPath("/usr/sbin/missing")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("LookPath error = %v, want exec.ErrNotFound", err)
	}
}

func TestMockExecutor_ReplaceProcess(t *testing.T) {
	m := NewMockExecutor("sshd")

	if err := m.ReplaceProcess("sshd", "-D", "-e"); err != nil {
		t.Fatalf("ReplaceProcess error: %v", err)
	}

	cmd, ok := m.LastCommand()
	if !ok {
		t.Fatal("LastCommand should return the recorded command")
	}
	if cmd.Name != "sshd" {
		t.Errorf("Name = %q, want %q", cmd.Name, "sshd")
	}
	if !reflect.DeepEqual(cmd.Args, []string{"-D", "-e"}) {
		t.Errorf("Args = %v, want [-D -e]", cmd.Args)
	}
}

func TestMockExecutor_ReplaceProcessMissingBinary(t *testing.T) {
	m := NewMockExecutor()

	err := m.ReplaceProcess("sshd", "-D")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("ReplaceProcess error = %v, want exec.ErrNotFound", err)
	}
	if _, ok := m.LastCommand(); ok {
		t.Error("a missing binary should not be recorded as executed")
	}
}

func TestMockExecutor_ReplaceProcessErr(t *testing.T) {
	m := NewMockExecutor("sshd")
	m.ReplaceProcessErr = errors.New("permission denied")

	if err := m.ReplaceProcess("sshd"); err == nil {
		t.Error("ReplaceProcess should return the injected error")
	}
}

func TestDefaultExecutor(t *testing.T) {
	defer ResetDefaults()

	mock := NewMockExecutor()
	SetDefaultExecutor(mock)
	if DefaultExecutor() != mock {
		t.Error("DefaultExecutor should return the injected executor")
	}

	ResetDefaults()
	if _, ok := DefaultExecutor().(*osExecutor); !ok {
		t.Error("ResetDefaults should restore the OS executor")
	}
}

func TestOSExecutor_ReplaceProcessMissingBinary(t *testing.T) {
	e := &osExecutor{}

	err := e.ReplaceProcess("/nonexistent/forage-sshd-target", "-D")
	if err == nil {
		t.Fatal("ReplaceProcess should fail for a missing binary")
	}
}

func TestExecArgv(t *testing.T) {
	got := execArgv("/usr/sbin/sshd", []string{"-D", "-e"})
	want := []string{"/usr/sbin/sshd", "-D", "-e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("execArgv() = %v, want %v", got, want)
	}
}

func TestFilterEnv(t *testing.T) {
	env := []string{
		"PATH=/usr/bin",
		"LD_PRELOAD=/tmp/evil.so",
		"HOME=/root",
		"LD_LIBRARY_PATH=/tmp",
		"LD_AUDIT=/tmp/audit.so",
	}

	got := filterEnv(env)
	want := []string{"PATH=/usr/bin", "HOME=/root"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filterEnv() = %v, want %v", got, want)
	}
}
