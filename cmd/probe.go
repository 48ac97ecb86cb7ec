package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/port"
)

var probePort int

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report listeners on the SSH port without changing anything",
	Long: `Probe lists the sockets listening on the configured port.

Exits 0 when the port is free and 1 when it is in use.`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().IntVarP(&probePort, "port", "p", 0, "Port to probe (default from config)")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := cfg.Port
	if probePort != 0 {
		p = probePort
	}

	inUse, listeners, err := port.Probe(cmd.Context(), getApp().Prober, p)
	if err != nil {
		return errors.ProbeFailed(p, err)
	}

	out := cmd.OutOrStdout()
	if !inUse {
		fmt.Fprintf(out, "port %d: free\n", p)
		return nil
	}

	fmt.Fprintf(out, "port %d: in use\n", p)
	for _, l := range listeners {
		fmt.Fprintf(out, "  %s\n", l)
	}
	return errors.PortInUse(p)
}
