// Package paths provides centralized path handling for outliner.
// It follows the XDG Base Directory specification and lets every
// directory be overridden through the environment.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for outliner
	EnvConfigDir = "OUTLINER_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for outliner
	EnvDataDir = "OUTLINER_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for outliner
	EnvStateDir = "OUTLINER_STATE_DIR"

	// EnvXDGStateHome is read directly so tests can redirect it after
	// the xdg package has been initialized
	EnvXDGStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names. User-configurable locations belong in pkg/config.
const (
	// AppDirName is the directory name used below every XDG base directory
	AppDirName = "outliner"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "outliner.log"

	// DefaultDocumentName is the scene document used when none is given
	DefaultDocumentName = "scene.toml"
)

// ConfigDir returns the directory holding the user configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// DataDir returns the directory holding scene documents by default.
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// DefaultDocument returns the path of the default scene document.
func DefaultDocument() string {
	return filepath.Join(DataDir(), DefaultDocumentName)
}

// StateDir returns the directory for logs and other state.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if stateHome := os.Getenv(EnvXDGStateHome); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
