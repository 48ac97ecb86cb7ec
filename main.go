package main

import (
	"os"

	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
