// Package paths resolves where csv2lua looks for its optional config file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the per-user config directory name.
const AppDirName = "csv2lua"

// ConfigFileName is the file looked up inside the config directory.
const ConfigFileName = "config.yaml"

// EnvConfigFile overrides the config file location.
const EnvConfigFile = "CSV2LUA_CONFIG"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/csv2lua (fallback ~/.config/csv2lua)
// macOS:   ~/Library/Application Support/csv2lua
// Windows: %APPDATA%/csv2lua
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	}

	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// ResolveConfigFile returns the config file path following the precedence
// chain: flag > CSV2LUA_CONFIG env > DefaultConfigDir()/config.yaml.
//
// explicit is true when the path came from the flag or the environment; a
// missing explicit file is an error for the caller, a missing default is not.
func ResolveConfigFile(flag string) (path string, explicit bool, err error) {
	if flag != "" {
		path, err = filepath.Abs(flag)
		return path, true, err
	}
	if env := os.Getenv(EnvConfigFile); env != "" {
		path, err = filepath.Abs(env)
		return path, true, err
	}
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, ConfigFileName), false, nil
}
