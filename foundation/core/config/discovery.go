// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Locates the configuration file from the TOD_CONFIG variable
//              or a list of well-known paths.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-14 v0.2.0: Discovery reduced to env variable and default paths

package config

import (
	"os"
	"path/filepath"

	coreerr "github.com/msto63/tod/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "TOD_CONFIG"

// DefaultPaths returns the locations searched when TOD_CONFIG is unset, in
// order of precedence.
func DefaultPaths() []string {
	paths := []string{
		"./tod.toml",
		"./tod.yaml",
		"./tod.yml",
		"./configs/tod.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "tod", "config.toml"),
			filepath.Join(home, ".config", "tod", "config.yaml"),
		)
	}
	return paths
}

// FindConfigFile returns the first existing regular file in paths.
func FindConfigFile(paths []string) (string, error) {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", coreerr.New("configuration file not found").
		WithCode(coreerr.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searched", paths)
}

// LoadFromEnv loads the file named by TOD_CONFIG, or the first file found in
// DefaultPaths. When TOD_CONFIG is unset and no file exists the defaults are
// returned. A TOD_CONFIG naming a missing file is an error.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}
	path, err := FindConfigFile(DefaultPaths())
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}
