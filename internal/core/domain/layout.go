package domain

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the name of the application directory under the XDG base directories.
	AppDirName = "recent"

	// StoreFileName is the name of the preference store database.
	StoreFileName = "prefs.db"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.yaml"

	// RecentFilesKey is the preference key the recent list is persisted under.
	RecentFilesKey = "recentfiles"

	// MaxFilesShown is the default number of recent entries presented to the user.
	MaxFilesShown = 10

	// MaxDisplayLength is the default maximum display width of a menu label.
	MaxDisplayLength = 40

	// DefaultOpenIconPath is the icon used by the plain open command.
	DefaultOpenIconPath = "/icons/commands/folder_picture.png"

	// DefaultDebounceWindow is the default time window for coalescing file events.
	DefaultDebounceWindow = 50 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStorePath returns the default location of the preference store.
// It joins the XDG data home, the app directory and prefs.db.
func DefaultStorePath() string {
	return filepath.Join(xdg.DataHome, AppDirName, StoreFileName)
}

// DefaultConfigPath returns the default location of the configuration file.
// It joins the XDG config home, the app directory and config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}
