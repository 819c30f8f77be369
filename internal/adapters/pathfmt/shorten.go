// Package pathfmt shortens resource identifiers for display in menus.
package pathfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"go.trai.ch/recent/internal/core/ports"
)

const ellipsis = "..."

var _ ports.DisplayFormatter = Formatter{}

// Formatter implements ports.DisplayFormatter by eliding the middle of paths.
type Formatter struct{}

// New returns a Formatter.
func New() Formatter {
	return Formatter{}
}

// Shorten returns identifier unchanged if it fits in maxLength terminal cells.
// Otherwise it keeps the first element and as many trailing elements as fit,
// as in "/home/.../data/a.tif". When even "first/.../name" is too wide the
// name is cut from the left behind an ellipsis. A non-positive maxLength
// disables shortening.
func (Formatter) Shorten(identifier string, maxLength int) string {
	if maxLength <= 0 || runewidth.StringWidth(identifier) <= maxLength {
		return identifier
	}

	sep := separator(identifier)
	segments := strings.Split(identifier, sep)
	if n := len(segments); n >= 3 {
		head := segments[0] + sep + ellipsis + sep
		for k := 2; k < n; k++ {
			candidate := head + strings.Join(segments[k:], sep)
			if runewidth.StringWidth(candidate) <= maxLength {
				return candidate
			}
		}
	}

	name := segments[len(segments)-1]
	if name == "" {
		name = identifier
	}
	if maxLength <= len(ellipsis) {
		return tail(name, maxLength)
	}
	return ellipsis + tail(name, maxLength-len(ellipsis))
}

// separator picks backslash only for identifiers that use it exclusively.
func separator(identifier string) string {
	if !strings.Contains(identifier, "/") && strings.Contains(identifier, `\`) {
		return `\`
	}
	return "/"
}

// tail returns the longest suffix of s that fits in width cells.
func tail(s string, width int) string {
	runes := []rune(s)
	used := 0
	i := len(runes)
	for i > 0 {
		w := runewidth.RuneWidth(runes[i-1])
		if used+w > width {
			break
		}
		used += w
		i--
	}
	return string(runes[i:])
}
