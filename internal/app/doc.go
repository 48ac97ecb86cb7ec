// Package app provides the application context for forage-sshd.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
//	type App struct {
//	    ConfigDir string                 // Where launcher profiles live
//	    Prober    port.Prober            // Listening-socket query
//	    Killer    reclaim.Killer         // Process listing and signalling
//	    Executor  system.CommandExecutor // Process replacement
//	    Sleep     launcher.SleepFunc     // Settle delay
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithConfigDir(dir),
//	    app.WithProber(port.NewMockProber()),
//	    app.WithExecutor(system.NewMockExecutor("/usr/sbin/sshd")),
//	)
package app
