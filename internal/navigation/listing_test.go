package navigation

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcars/internal/errors"
	"lcars/internal/fileinfo"
)

func TestListDirectorySortOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), time.Time{})
	writeFile(t, filepath.Join(dir, "A.TXT"), time.Time{})
	writeFile(t, filepath.Join(dir, ".hidden"), time.Time{})
	mkdir(t, filepath.Join(dir, "Zeta"))
	mkdir(t, filepath.Join(dir, "alpha"))

	p := NewProvider(newFakeFS(dir))
	items, err := p.ListDirectory(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "Zeta", ".hidden", "A.TXT", "b.txt"}, names(items))

	byName := map[string]fileinfo.Item{}
	for _, item := range items {
		byName[item.Name] = item
	}
	assert.Equal(t, fileinfo.KindDirectory, byName["alpha"].Kind)
	assert.Empty(t, byName["alpha"].Extension)
	assert.Equal(t, ".TXT", byName["A.TXT"].Extension)
	assert.True(t, byName[".hidden"].IsHidden)
	assert.False(t, byName["b.txt"].IsHidden)
	assert.Equal(t, filepath.Join(dir, "b.txt"), byName["b.txt"].Path)
	assert.Equal(t, int64(1), byName["b.txt"].Size)
}

func TestListDirectorySkipsUnreadableEntry(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 10; i++ {
		writeFile(t, filepath.Join(dir, fmt.Sprintf("file%02d.dat", i)), time.Time{})
	}

	fsys := newFakeFS(dir)
	fsys.statErr[filepath.Join(dir, "file04.dat")] = fs.ErrPermission

	items, err := NewProvider(fsys).ListDirectory(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, items, 9)
	assert.NotContains(t, names(items), "file04.dat")
}

func TestListDirectoryFailure(t *testing.T) {
	dir := t.TempDir()
	p := NewProvider(newFakeFS(dir))

	_, err := p.ListDirectory(context.Background(), filepath.Join(dir, "missing"))
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeFileSystem, appErr.Type)
	assert.Equal(t, "list_directory", appErr.Operation)
}

func TestListDirectoryEmpty(t *testing.T) {
	items, err := NewProvider(newFakeFS("")).ListDirectory(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSortListingTieBreak(t *testing.T) {
	items := []fileinfo.Item{
		{Name: "readme", Kind: fileinfo.KindFile},
		{Name: "README", Kind: fileinfo.KindFile},
		{Name: "src", Kind: fileinfo.KindDirectory},
	}
	SortListing(items)
	assert.Equal(t, []string{"src", "README", "readme"}, names(items))
}
