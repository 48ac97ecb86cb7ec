package system

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (e *osExecutor) ReplaceProcess(name string, args ...string) error {
	binary, err := exec.LookPath(name)
	if err != nil {
		return err
	}

	return unix.Exec(binary, execArgv(binary, args), SafeEnviron())
}

// execArgv puts the resolved path in argv[0]; sshd refuses to re-exec
// itself unless started by absolute path.
func execArgv(binary string, args []string) []string {
	return append([]string{binary}, args...)
}
