package domain

import "time"

// Settings holds the runtime configuration of the registry and its host.
type Settings struct {
	// StorePath is the location of the preference store database.
	StorePath string
	// MaxShown is the number of recent entries presented to the user.
	MaxShown int
	// MaxDisplayLength is the maximum display width of a menu label.
	MaxDisplayLength int
	// OpenIconPath is the icon of the plain open command, shared by recent entries.
	OpenIconPath string
	// DebounceWindow coalesces bursts of file events from the watcher.
	DebounceWindow time.Duration
	// LogJSON switches the logger to JSON output.
	LogJSON bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		StorePath:        DefaultStorePath(),
		MaxShown:         MaxFilesShown,
		MaxDisplayLength: MaxDisplayLength,
		OpenIconPath:     DefaultOpenIconPath,
		DebounceWindow:   DefaultDebounceWindow,
	}
}
