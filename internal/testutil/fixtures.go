package testutil

import (
	"embed"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/firefly-forage/packages/forage-sshd/internal/config"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadProfileFixture decodes a profile fixture over the defaults.
func LoadProfileFixture(name string) (*config.LauncherConfig, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	cfg := config.Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidProfile returns the valid profile fixture.
func ValidProfile() (*config.LauncherConfig, error) {
	return LoadProfileFixture("valid_profile.toml")
}

// InvalidProfile returns the invalid profile fixture.
func InvalidProfile() (*config.LauncherConfig, error) {
	return LoadProfileFixture("invalid_profile.toml")
}
