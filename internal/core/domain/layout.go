package domain

import "path/filepath"

const (
	// AppName is the name of the application directory under the config home.
	AppName = "colortools"

	// ConfigFileName is the name of the palette configuration file.
	ConfigFileName = "config.json"

	// PaletteNamespace is the top-level config key holding palette colors.
	PaletteNamespace = "colors"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultConfigPath returns the config file location for the given
// XDG_CONFIG_HOME and HOME values. XDG_CONFIG_HOME wins when set.
func DefaultConfigPath(xdgConfigHome, home string) string {
	base := xdgConfigHome
	if base == "" {
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName, ConfigFileName)
}
