package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".breeze"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "breeze.yaml"

	// PluginName identifies breeze in dependency messages handed to the host.
	PluginName = "breeze"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the default root directory for breeze metadata.
func DefaultStatePath() string {
	return StateDirName
}

// DefaultStorePath returns the default path for the build info store.
// It joins .breeze and store.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreDirName)
}
