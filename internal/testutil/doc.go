// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// TOML launcher profiles are embedded using go:embed:
//
//	fixtures/valid_profile.toml
//	fixtures/invalid_profile.toml
//
// Helper functions decode them into typed config objects:
//
//	cfg, err := testutil.ValidProfile()
//	cfg, err := testutil.InvalidProfile()
//
// # Test Environment
//
// NewTestEnv builds a temporary config directory and an app.App wired to
// mock prober, killer, and executor, and installs it as app.Default until
// Cleanup is called:
//
//	env := testutil.NewTestEnv(t)
//	defer env.Cleanup()
//	env.Occupy(22, 100)
//	env.AddProcess(100, "sshd")
package testutil
