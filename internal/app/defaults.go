package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Defaults are the locations fm uses when nothing else is configured.
type Defaults struct {
	ConfigPath string
	BaseDir    string
	LogDir     string
}

// GetDefaults resolves default locations. Each path takes the first match of:
//
//	config file: $FM_CONFIG_PATH, $XDG_CONFIG_HOME/fm.toml, ~/.config/fm.toml
//	data dir:    $FM_HOME, $XDG_DATA_HOME/fm, ~/.local/share/fm
//
// Relative XDG values are ignored, as the XDG base directory rules require.
func GetDefaults() (*Defaults, error) {
	configPath, err := resolve("FM_CONFIG_PATH", "XDG_CONFIG_HOME", "fm.toml", ".config")
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	baseDir, err := resolve("FM_HOME", "XDG_DATA_HOME", "fm", filepath.Join(".local", "share"))
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}

	return &Defaults{
		ConfigPath: configPath,
		BaseDir:    baseDir,
		LogDir:     filepath.Join(baseDir, "log"),
	}, nil
}

// resolve returns $override verbatim, else name under $xdgVar, else name
// under homeFallback in the user's home directory.
func resolve(override, xdgVar, name, homeFallback string) (string, error) {
	if path := os.Getenv(override); path != "" {
		return path, nil
	}
	if dir := os.Getenv(xdgVar); filepath.IsAbs(dir) {
		return filepath.Join(dir, name), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, homeFallback, name), nil
}
