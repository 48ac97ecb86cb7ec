package cmd

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/config"
)

// getApp returns the application context.
func getApp() *app.App {
	return app.Default
}

// loadConfig loads the profile selected with --config.
func loadConfig() (*config.LauncherConfig, error) {
	return getApp().LoadConfig(profileName)
}
