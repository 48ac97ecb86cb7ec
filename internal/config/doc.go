// Package config provides the launcher configuration for forage-sshd.
//
// # Defaults
//
// With no configuration file present the launcher behaves as a fixed
// container entrypoint:
//
//	port            = 22
//	process_pattern = "sshd"
//	signal          = "SIGTERM"
//	settle_delay    = "1s"
//	binary          = "/usr/sbin/sshd"
//
// The foreground flag (-D) is always passed to the binary and cannot be
// removed by configuration.
//
// # Configuration File
//
// An optional TOML file overrides the defaults:
//
//	/etc/firefly-forage/sshd-launcher.toml
//
// Named profiles live next to it and are selected with --config <name>.
// Profile paths are resolved with filepath-securejoin so a name can never
// escape the configuration directory. A missing default file is not an
// error; a missing named profile is.
//
// # Validation
//
// LauncherConfig.Validate checks the port range, the process pattern, the
// signal name, and the binary path. Load validates after decoding and
// rejects unknown keys.
package config
