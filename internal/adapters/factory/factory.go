// Package factory synthesizes the reopen command descriptors of recent files.
package factory

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
)

// IDPrefix starts the ID of every synthesized descriptor.
const IDPrefix = "recent."

var _ ports.DescriptorFactory = (*Factory)(nil)

// Factory implements ports.DescriptorFactory.
type Factory struct {
	formatter  ports.DisplayFormatter
	catalog    ports.ActionCatalog
	maxDisplay int
}

// New creates a Factory shortening menu labels to maxDisplay cells.
func New(formatter ports.DisplayFormatter, catalog ports.ActionCatalog, maxDisplay int) *Factory {
	return &Factory{formatter: formatter, catalog: catalog, maxDisplay: maxDisplay}
}

// Create builds a descriptor that reopens identifier from the Open Recent menu.
// The icon is copied from the open command at creation time, if it is registered.
func (f *Factory) Create(identifier string) *domain.Descriptor {
	menu := domain.RecentMenuPath()
	menu = append(menu, domain.MenuEntry{
		Label:  f.formatter.Shorten(identifier, f.maxDisplay),
		Weight: domain.RecentWeight,
	})

	d := &domain.Descriptor{
		ID:      DescriptorID(identifier),
		Action:  domain.ReopenActionID,
		Presets: map[string]string{domain.InputFileParam: identifier},
		Menu:    menu,
	}
	if open, ok := f.catalog.Lookup(domain.OpenActionID); ok {
		d.IconPath = open.IconPath
	}
	return d
}

// DescriptorID returns the stable descriptor ID of identifier.
func DescriptorID(identifier string) string {
	return IDPrefix + strconv.FormatUint(xxhash.Sum64String(identifier), 16)
}
