// Package paths resolves the kiln settings directory location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvSettingsDir overrides the settings directory location.
const EnvSettingsDir = "KILN_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden
// in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultSettingsDir returns the platform-specific default settings
// directory.
//
// Linux:   $XDG_CONFIG_HOME/kiln (fallback ~/.config/kiln)
// macOS:   ~/Library/Application Support/kiln
// Windows: %APPDATA%/kiln
func DefaultSettingsDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "kiln"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "kiln"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "kiln"), nil
	}
}

// ResolveSettingsDir returns the settings directory following the
// precedence chain: flag > KILN_CONFIG_DIR env > DefaultSettingsDir().
func ResolveSettingsDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvSettingsDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultSettingsDir()
}
