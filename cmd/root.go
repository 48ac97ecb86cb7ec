package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/launcher"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/logging"
)

var (
	verbose     bool
	jsonOutput  bool
	profileName string
	dryRun      bool
)

var rootCmd = &cobra.Command{
	Use:   "forage-sshd",
	Short: "Free the SSH port and exec sshd in the foreground",
	Long: `forage-sshd is the SSH entrypoint for forage sandboxes.

On start it:
  - Checks whether the SSH port (22) has a listener
  - If so, signals processes matching "sshd" and waits briefly
  - Execs /usr/sbin/sshd -D, replacing itself

The port is not checked again before exec; sshd reports a failed bind itself.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())
		logging.SetUserOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
	RunE: runLaunch,
}

func Execute() error {
	ctx, stop := signalContext()
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// signalContext is cancelled by SIGINT or SIGTERM, which aborts a pending
// settle delay instead of killing the launcher mid-sequence.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&profileName, "config", "c", "", "Launcher profile name in /etc/firefly-forage (default sshd-launcher)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Probe and print the plan without signalling or exec'ing")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l := getApp().Launcher(cfg)

	if dryRun {
		report, err := l.DryRun(cmd.Context())
		if report != nil {
			displayPlan(report, cfg.ProcessPattern)
		}
		return err
	}

	_, err = l.Run(cmd.Context())
	var launchErr *errors.LauncherError
	if errors.As(err, &launchErr) && launchErr.Code == errors.ExitHandoffFailed {
		logError("Could not start %s; check binary in the launcher profile", cfg.Binary)
	}
	return err
}

// displayPlan shows what a launch would do.
func displayPlan(r *launcher.Report, pattern string) {
	if r.InUse {
		logWarning("Port %d is in use", r.Port)
		for _, l := range r.Listeners {
			logWarning("  %s", l)
		}
		logInfo("Would signal processes matching %q", pattern)
	} else {
		logInfo("Port %d is free", r.Port)
	}
	logSuccess("Would exec %s", r.CommandLine())
}
