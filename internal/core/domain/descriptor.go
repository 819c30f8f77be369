package domain

import (
	"strings"
	"time"
)

const (
	// FileMenuLabel is the label of the root File menu.
	FileMenuLabel = "File"

	// RecentMenuLabel is the label of the submenu holding recent entries.
	RecentMenuLabel = "Open Recent"

	// OpenMenuLabel is the label of the plain open command.
	OpenMenuLabel = "Open..."

	// OpenActionID identifies the plain open command.
	OpenActionID = "file.open"

	// ReopenActionID identifies the action that reopens a recent resource.
	ReopenActionID = "file.reopen"

	// InputFileParam is the action input holding the resource identifier.
	InputFileParam = "inputFile"

	// RecentWeight is the menu weight shared by all recent entries.
	RecentWeight = 0
)

// menuSeparator joins menu labels for display.
const menuSeparator = " > "

// MenuEntry is a single segment of a menu path.
type MenuEntry struct {
	Label  string
	Weight float64
}

// MenuPath is the location of a command in the host menu, root first.
type MenuPath []MenuEntry

// NewMenuPath builds a menu path from labels, each with zero weight.
func NewMenuPath(labels ...string) MenuPath {
	path := make(MenuPath, 0, len(labels))
	for _, label := range labels {
		path = append(path, MenuEntry{Label: label})
	}
	return path
}

// Leaf returns the last segment of the path, or the zero entry for an empty path.
func (p MenuPath) Leaf() MenuEntry {
	if len(p) == 0 {
		return MenuEntry{}
	}
	return p[len(p)-1]
}

// HasPrefix reports whether p starts with the labels of prefix.
func (p MenuPath) HasPrefix(prefix MenuPath) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, entry := range prefix {
		if p[i].Label != entry.Label {
			return false
		}
	}
	return true
}

// String renders the path as "File > Open Recent > leaf".
func (p MenuPath) String() string {
	labels := make([]string, 0, len(p))
	for _, entry := range p {
		labels = append(labels, entry.Label)
	}
	return strings.Join(labels, menuSeparator)
}

// RecentMenuPath returns the path of the Open Recent submenu.
func RecentMenuPath() MenuPath {
	return NewMenuPath(FileMenuLabel, RecentMenuLabel)
}

// Descriptor is a registrable command bound to an action, with preset
// inputs, a menu location and an icon.
type Descriptor struct {
	ID       string
	Action   string
	Presets  map[string]string
	Menu     MenuPath
	IconPath string

	// Revision counts refreshes applied by the command registry.
	Revision uint64
	// Touched is the time of the last refresh.
	Touched time.Time
}

// Resource returns the identifier preset for the input file parameter.
func (d *Descriptor) Resource() (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.Presets[InputFileParam]
	return v, ok
}

// Label returns the label of the descriptor's menu leaf.
func (d *Descriptor) Label() string {
	if d == nil {
		return ""
	}
	return d.Menu.Leaf().Label
}
