package domain

import "go.trai.ch/zerr"

var (
	// ErrRecentLoadFailed is returned when the persisted recent list cannot be read at startup.
	ErrRecentLoadFailed = zerr.New("failed to load recent files")

	// ErrRecentSaveFailed is returned when the recent list cannot be persisted after a mutation.
	ErrRecentSaveFailed = zerr.New("failed to save recent files")

	// ErrRecentClearFailed is returned when the persisted recent list cannot be cleared.
	ErrRecentClearFailed = zerr.New("failed to clear recent files")

	// ErrUnknownEvent is returned when an event of an unsupported kind is handled.
	ErrUnknownEvent = zerr.New("unknown event kind")

	// ErrBusClosed is returned when publishing to an event bus that has been closed.
	ErrBusClosed = zerr.New("event bus is closed")

	// ErrStoreOpenFailed is returned when the preference store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open preference store")

	// ErrStoreCreateFailed is returned when the preference store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create preference store directory")

	// ErrStoreReadFailed is returned when a preference cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read preference")

	// ErrStoreWriteFailed is returned when a preference cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write preference")

	// ErrStorePathRequired is returned when the preference store is opened without a path.
	ErrStorePathRequired = zerr.New("preference store path is required")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be applied.
	ErrConfigEnvFailed = zerr.New("failed to parse environment overrides")

	// ErrCommandNotFound is returned when running a command that is not registered.
	ErrCommandNotFound = zerr.New("command not found")

	// ErrActionNotFound is returned when a command targets an action without a handler.
	ErrActionNotFound = zerr.New("no handler for action")

	// ErrMissingPreset is returned when an action is run without a required input parameter.
	ErrMissingPreset = zerr.New("missing preset input")

	// ErrMenuIndexOutOfRange is returned when selecting a menu entry that does not exist.
	ErrMenuIndexOutOfRange = zerr.New("menu entry out of range")

	// ErrNoPathsSpecified is returned when a command requires at least one path.
	ErrNoPathsSpecified = zerr.New("no paths specified")

	// ErrWatchFailed is returned when a directory cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch directory")
)
