package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults holds the built-in fallback values. Callers pass an explicit
// Defaults value into Load instead of relying on package-mutable state.
type Defaults struct {
	DockerRoot string
	Endpoint   string
}

// BuiltinDefaults returns the stock defaults used when no config file exists.
func BuiltinDefaults() Defaults {
	return Defaults{
		DockerRoot: "/var/lib/docker",
		Endpoint:   "https://transfer.sh",
	}
}

// Config is the resolved dvm configuration.
type Config struct {
	// DockerRoot is the Docker root directory; volumes live under
	// <DockerRoot>/volumes.
	DockerRoot string
	// Endpoint is the base URL of the transfer.sh-compatible service.
	Endpoint string
}

// file mirrors the on-disk document:
//
//	settings:
//	  docker_root: /var/lib/docker
//	  endpoint: https://transfer.sh
//
// Unknown keys are ignored.
type file struct {
	Settings struct {
		DockerRoot string `yaml:"docker_root"`
		Endpoint   string `yaml:"endpoint"`
	} `yaml:"settings"`
}

// DefaultPath returns the per-user config file path (~/.dvm/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".dvm", "config.yaml"), nil
}

// Load reads the config file at path, overlaying it on defaults. A missing
// file yields the defaults silently; an unreadable or malformed file yields
// the defaults with a warning written to warn. Load never fails.
func Load(path string, defaults Defaults, warn io.Writer) Config {
	cfg := Config{DockerRoot: defaults.DockerRoot, Endpoint: defaults.Endpoint}

	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && warn != nil {
			fmt.Fprintf(warn, "Warning: could not read config (%s): %v\n", path, err)
		}
		return cfg
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		if warn != nil {
			fmt.Fprintf(warn, "Warning: could not parse config (%s): %v\n", path, err)
		}
		return cfg
	}

	if f.Settings.DockerRoot != "" {
		cfg.DockerRoot = f.Settings.DockerRoot
	}
	if f.Settings.Endpoint != "" {
		cfg.Endpoint = f.Settings.Endpoint
	}
	return cfg
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	var f file
	f.Settings.DockerRoot = cfg.DockerRoot
	f.Settings.Endpoint = cfg.Endpoint
	b, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	out := append([]byte("# dvm configuration\n"), b...)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
