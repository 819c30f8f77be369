package prefs_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recent/internal/adapters/prefs"
	"go.trai.ch/recent/internal/core/domain"
)

func openStore(t *testing.T) (*prefs.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")
	store, err := prefs.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := prefs.Open("  ")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStorePathRequired.Error())
}

func TestStore_LoadList_Missing(t *testing.T) {
	store, _ := openStore(t)

	got, err := store.LoadList(domain.RecentFilesKey)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestStore_SaveList_RoundTrip(t *testing.T) {
	store, _ := openStore(t)

	want := []string{"/data/a.tif", "https://example.org/b.png", "", "c d.txt"}
	require.NoError(t, store.SaveList(domain.RecentFilesKey, want))

	got, err := store.LoadList(domain.RecentFilesKey)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveList_Replaces(t *testing.T) {
	store, _ := openStore(t)

	require.NoError(t, store.SaveList(domain.RecentFilesKey, []string{"a", "b", "c"}))
	require.NoError(t, store.SaveList(domain.RecentFilesKey, []string{"c"}))

	got, err := store.LoadList(domain.RecentFilesKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got)
}

func TestStore_SaveList_Empty(t *testing.T) {
	store, _ := openStore(t)

	require.NoError(t, store.SaveList(domain.RecentFilesKey, []string{"a"}))
	require.NoError(t, store.SaveList(domain.RecentFilesKey, nil))

	got, err := store.LoadList(domain.RecentFilesKey)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_SaveList_KeepsOrderBeyondOneByte(t *testing.T) {
	store, _ := openStore(t)

	want := make([]string, 300)
	for i := range want {
		want[i] = fmt.Sprintf("/files/%03d.tif", 299-i)
	}
	require.NoError(t, store.SaveList(domain.RecentFilesKey, want))

	got, err := store.LoadList(domain.RecentFilesKey)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	store, _ := openStore(t)

	require.NoError(t, store.SaveList(domain.RecentFilesKey, []string{"a"}))
	require.NoError(t, store.SaveList("other", []string{"x", "y"}))
	require.NoError(t, store.Clear("other"))

	got, err := store.LoadList(domain.RecentFilesKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
}

func TestStore_Clear(t *testing.T) {
	store, _ := openStore(t)

	require.NoError(t, store.SaveList(domain.RecentFilesKey, []string{"a", "b"}))
	require.NoError(t, store.Clear(domain.RecentFilesKey))

	got, err := store.LoadList(domain.RecentFilesKey)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Clearing a missing key is a no-op.
	require.NoError(t, store.Clear(domain.RecentFilesKey))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := prefs.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveList(domain.RecentFilesKey, []string{"a", "b"}))
	require.NoError(t, store.Close())

	reopened, err := prefs.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.LoadList(domain.RecentFilesKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestStore_Closed(t *testing.T) {
	store, _ := openStore(t)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, err := store.LoadList(domain.RecentFilesKey)
	require.Error(t, err)
	require.Error(t, store.SaveList(domain.RecentFilesKey, []string{"a"}))
	require.Error(t, store.Clear(domain.RecentFilesKey))
}
