package factory_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recent/internal/adapters/factory"
	"go.trai.ch/recent/internal/adapters/pathfmt"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestFactory_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	formatter := mocks.NewMockDisplayFormatter(ctrl)
	catalog := mocks.NewMockActionCatalog(ctrl)

	formatter.EXPECT().Shorten("/data/a.tif", 40).Return("a.tif")
	catalog.EXPECT().Lookup(domain.OpenActionID).Return(&domain.Descriptor{IconPath: "/icons/open.png"}, true)

	d := factory.New(formatter, catalog, 40).Create("/data/a.tif")

	assert.Equal(t, factory.DescriptorID("/data/a.tif"), d.ID)
	assert.True(t, strings.HasPrefix(d.ID, factory.IDPrefix))
	assert.Equal(t, domain.ReopenActionID, d.Action)
	assert.Equal(t, map[string]string{domain.InputFileParam: "/data/a.tif"}, d.Presets)
	assert.Equal(t, "File > Open Recent > a.tif", d.Menu.String())
	assert.Equal(t, float64(domain.RecentWeight), d.Menu.Leaf().Weight)
	assert.Equal(t, "/icons/open.png", d.IconPath)
}

func TestFactory_Create_WithoutOpenCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockActionCatalog(ctrl)
	catalog.EXPECT().Lookup(domain.OpenActionID).Return(nil, false)

	d := factory.New(pathfmt.New(), catalog, 40).Create("a.tif")

	assert.Empty(t, d.IconPath)
	assert.Equal(t, "a.tif", d.Label())
}

func TestFactory_Create_LongPathKeepsOriginalPreset(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockActionCatalog(ctrl)
	catalog.EXPECT().Lookup(gomock.Any()).Return(nil, false)

	long := "/home/someone/" + strings.Repeat("nested/", 10) + "cells.tif"
	d := factory.New(pathfmt.New(), catalog, domain.MaxDisplayLength).Create(long)

	assert.LessOrEqual(t, len(d.Label()), domain.MaxDisplayLength)
	assert.Equal(t, "/.../nested/nested/nested/cells.tif", d.Label())
	got, ok := d.Resource()
	require.True(t, ok)
	assert.Equal(t, long, got)
}

func TestDescriptorID_Stable(t *testing.T) {
	assert.Equal(t, factory.DescriptorID("a"), factory.DescriptorID("a"))
	assert.NotEqual(t, factory.DescriptorID("a"), factory.DescriptorID("A"))
	assert.NotEqual(t, factory.DescriptorID(""), factory.DescriptorID(" "))
}
