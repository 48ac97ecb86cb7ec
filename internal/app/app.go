package app

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/launcher"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/port"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/reclaim"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/system"
)

// App holds the application dependencies
type App struct {
	// ConfigDir holds the launcher profiles
	ConfigDir string

	Prober   port.Prober
	Killer   reclaim.Killer
	Executor system.CommandExecutor
	Sleep    launcher.SleepFunc
}

// Option is a function that configures the App
type Option func(*App)

// WithConfigDir sets a custom configuration directory
func WithConfigDir(dir string) Option {
	return func(a *App) {
		a.ConfigDir = dir
	}
}

// WithProber sets a custom prober
func WithProber(p port.Prober) Option {
	return func(a *App) {
		a.Prober = p
	}
}

// WithKiller sets a custom killer
func WithKiller(k reclaim.Killer) Option {
	return func(a *App) {
		a.Killer = k
	}
}

// WithExecutor sets a custom executor
func WithExecutor(e system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = e
	}
}

// WithSleep sets a custom settle sleep
func WithSleep(s launcher.SleepFunc) Option {
	return func(a *App) {
		a.Sleep = s
	}
}

// New creates a new App with the given options.
// Unset dependencies use the real OS implementations.
func New(opts ...Option) *App {
	app := &App{
		ConfigDir: config.DefaultConfigDir,
		Prober:    port.SystemProber{},
		Killer:    reclaim.SystemKiller{},
		Executor:  system.DefaultExecutor(),
		Sleep:     launcher.Sleep,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// LoadConfig loads the named launcher profile ("" for the default).
func (a *App) LoadConfig(profile string) (*config.LauncherConfig, error) {
	cfg, err := config.Load(a.ConfigDir, profile)
	if err != nil {
		return nil, errors.ConfigError("failed to load launcher config", err)
	}
	logging.Debug("loaded config", "dir", a.ConfigDir, "profile", profile, "port", cfg.Port, "binary", cfg.Binary)
	return cfg, nil
}

// Launcher returns a Launcher for cfg wired to the app's dependencies.
func (a *App) Launcher(cfg *config.LauncherConfig) *launcher.Launcher {
	return launcher.New(cfg,
		launcher.WithProber(a.Prober),
		launcher.WithKiller(a.Killer),
		launcher.WithExecutor(a.Executor),
		launcher.WithSleep(a.Sleep),
	)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
