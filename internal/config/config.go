package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
	shellquote "github.com/kballard/go-shellquote"
	"golang.org/x/sys/unix"

	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/port"
)

const (
	DefaultConfigDir      = "/etc/firefly-forage"
	DefaultProfileName    = "sshd-launcher"
	DefaultPort           = 22
	DefaultProcessPattern = "sshd"
	DefaultSignal         = "SIGTERM"
	DefaultSettleDelay    = time.Second
	DefaultBinary         = "/usr/sbin/sshd"

	// ForegroundFlag keeps sshd attached to the launcher's PID instead of
	// daemonizing, so the container runtime supervises it directly.
	ForegroundFlag = "-D"
)

// profileNameRegex validates profile names passed to --config.
var profileNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateProfileName checks if a profile name is valid.
func ValidateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	if !profileNameRegex.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

// LauncherConfig controls the probe, reclaim, settle, and handoff steps.
type LauncherConfig struct {
	Port             int           `toml:"port"`
	ProcessPattern   string        `toml:"process_pattern"`
	MatchFullCommand bool          `toml:"match_full_command"` // match the full command line, like pkill -f
	Signal           string        `toml:"signal"`
	SettleDelay      time.Duration `toml:"settle_delay"`
	Binary           string        `toml:"binary"`
	ExtraArgs        string        `toml:"extra_args"` // shell-quoted, appended after ForegroundFlag
}

// Default returns the built-in configuration.
func Default() *LauncherConfig {
	return &LauncherConfig{
		Port:           DefaultPort,
		ProcessPattern: DefaultProcessPattern,
		Signal:         DefaultSignal,
		SettleDelay:    DefaultSettleDelay,
		Binary:         DefaultBinary,
	}
}

// Validate checks that the LauncherConfig is valid.
func (c *LauncherConfig) Validate() error {
	if err := port.ValidatePort(c.Port); err != nil {
		return err
	}

	if c.ProcessPattern == "" {
		return fmt.Errorf("process_pattern is required")
	}
	if _, err := regexp.Compile(c.ProcessPattern); err != nil {
		return fmt.Errorf("invalid process_pattern: %w", err)
	}

	if _, err := c.SignalNum(); err != nil {
		return err
	}

	if c.SettleDelay < 0 {
		return fmt.Errorf("settle_delay cannot be negative (got %s)", c.SettleDelay)
	}

	if c.Binary == "" {
		return fmt.Errorf("binary is required")
	}
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("binary must be an absolute path (got %q)", c.Binary)
	}

	if _, err := shellquote.Split(c.ExtraArgs); err != nil {
		return fmt.Errorf("invalid extra_args: %w", err)
	}

	return nil
}

// SignalNum resolves the configured signal name. Both "TERM" and "SIGTERM"
// are accepted.
func (c *LauncherConfig) SignalNum() (syscall.Signal, error) {
	name := c.Signal
	if len(name) < 3 || name[:3] != "SIG" {
		name = "SIG" + name
	}
	sig := unix.SignalNum(name)
	if sig == 0 {
		return 0, fmt.Errorf("unknown signal %q", c.Signal)
	}
	return sig, nil
}

// Args returns the arguments passed to the binary on handoff. The
// foreground flag always comes first.
func (c *LauncherConfig) Args() ([]string, error) {
	extra, err := shellquote.Split(c.ExtraArgs)
	if err != nil {
		return nil, fmt.Errorf("invalid extra_args: %w", err)
	}
	return append([]string{ForegroundFlag}, extra...), nil
}

// ProfilePath returns the path of a named profile inside configDir.
func ProfilePath(configDir, name string) (string, error) {
	if err := ValidateProfileName(name); err != nil {
		return "", err
	}
	return securejoin.SecureJoin(configDir, name+".toml")
}

// Load reads the named profile from configDir and overlays it on the
// defaults. An empty name selects the default profile, whose absence is
// not an error.
func Load(configDir, name string) (*LauncherConfig, error) {
	explicit := name != ""
	if !explicit {
		name = DefaultProfileName
	}

	path, err := ProfilePath(configDir, name)
	if err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read profile %s: %w", name, err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", name, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in profile %s", undecoded[0].String(), name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", name, err)
	}

	return cfg, nil
}
