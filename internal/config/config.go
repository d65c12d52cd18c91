package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	AppName    = "datespan"
	ConfigName = "config"
	ConfigFile = ConfigName + ".yaml"
)

// DataDir returns the path to the datespan data directory (~/.datespan/)
// Creates the directory if it doesn't exist
// Can be overridden with DATESPAN_DATA_DIR environment variable
func DataDir() (string, error) {
	if dataDir := os.Getenv("DATESPAN_DATA_DIR"); dataDir != "" {
		expanded, err := homedir.Expand(dataDir)
		if err != nil {
			return "", fmt.Errorf("failed to expand data dir: %w", err)
		}
		if err := os.MkdirAll(expanded, 0755); err != nil {
			return "", err
		}
		return expanded, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// LogDir returns the path to the log directory (~/.datespan/logs/)
// Creates the directory if it doesn't exist
func LogDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}

	return logDir, nil
}

// ConfigPath returns the path to the config file (~/.datespan/config.yaml)
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, ConfigFile), nil
}

// ExpandPath resolves a leading ~ in user supplied paths
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", path, err)
	}
	return expanded, nil
}
