package listing_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/ui/listing"
)

func newPrinter(t *testing.T) (*listing.Printer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	return listing.New(buf), buf
}

func entry(resource, label string) domain.Descriptor {
	menu := domain.RecentMenuPath()
	menu = append(menu, domain.MenuEntry{Label: label})
	return domain.Descriptor{
		Presets: map[string]string{domain.InputFileParam: resource},
		Menu:    menu,
	}
}

func TestPrinter_Paths(t *testing.T) {
	p, buf := newPrinter(t)

	require.NoError(t, p.Paths("Recent files", []string{"/data/a.tif", "https://example.org/b.png"}))

	goldie.New(t).Assert(t, "paths", buf.Bytes())
}

func TestPrinter_Paths_Empty(t *testing.T) {
	p, buf := newPrinter(t)

	require.NoError(t, p.Paths("Recent files", nil))

	goldie.New(t).Assert(t, "paths_empty", buf.Bytes())
}

func TestPrinter_Paths_AlignsIndexes(t *testing.T) {
	p, buf := newPrinter(t)

	paths := make([]string, 10)
	for i := range paths {
		paths[i] = fmt.Sprintf("f%d", i)
	}
	require.NoError(t, p.Paths("Recent files", paths))

	goldie.New(t).Assert(t, "paths_aligned", buf.Bytes())
}

func TestPrinter_Menu(t *testing.T) {
	p, buf := newPrinter(t)

	entries := []domain.Descriptor{
		entry("a.tif", "a.tif"),
		entry("/home/someone/nested/deeper/cells.tif", "/.../cells.tif"),
	}
	require.NoError(t, p.Menu(domain.RecentMenuPath(), entries))

	goldie.New(t).Assert(t, "menu", buf.Bytes())
}

func TestPrinter_Messages(t *testing.T) {
	p, buf := newPrinter(t)

	require.NoError(t, p.Success("added /data/a.tif"))
	require.NoError(t, p.Warning("/data/b.tif was not in the recent list"))

	goldie.New(t).Assert(t, "messages", buf.Bytes())
}
