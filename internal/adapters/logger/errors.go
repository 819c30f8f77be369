package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// chainLink is an error that reports its own message and metadata separately
// from its cause, as *zerr.Error does.
type chainLink interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into one entry per message in its chain.
// Links with an empty message only carry metadata; it is attached to the
// previous entry, or to the next one at the head of the chain.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	pending := map[string]any{}

	for current := err; current != nil; {
		link, ok := current.(chainLink)
		if !ok {
			entry := ErrorEntry{Message: current.Error()}
			if len(pending) > 0 {
				entry.Metadata = pending
			}
			entries = append(entries, entry)
			break
		}

		switch {
		case link.Message() != "":
			meta := link.Metadata()
			maps.Copy(meta, pending)
			clear(pending)
			entries = append(entries, ErrorEntry{Message: link.Message(), Metadata: meta})
		case len(entries) > 0:
			maps.Copy(entries[len(entries)-1].Metadata, link.Metadata())
		default:
			maps.Copy(pending, link.Metadata())
		}
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as an "Error:" line followed by a "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
