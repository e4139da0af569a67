package navigation

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcars/internal/constants"
	"lcars/internal/errors"
)

func TestIsImageName(t *testing.T) {
	testCases := []struct {
		name     string
		expected bool
	}{
		{"a.jpg", true},
		{"b.JPEG", true},
		{"c.Png", true},
		{"d.gif", true},
		{"e.bmp", true},
		{"f.webp", true},
		{"g.svg", true},
		{"h.HEIC", true},
		{"i.heif", true},
		{"j.tiff", false},
		{"k.jpg.txt", false},
		{"jpg", false},
		{"", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, IsImageName(tc.name), tc.name)
	}
}

func TestSkipScanDir(t *testing.T) {
	assert.True(t, skipScanDir(".git"))
	assert.True(t, skipScanDir("$RECYCLE.BIN"))
	assert.True(t, skipScanDir("Thumbs"))
	assert.True(t, skipScanDir("THUMBS"))
	assert.False(t, skipScanDir("thumbsup"))
	assert.False(t, skipScanDir("Holiday"))
}

func TestRecentPhotosScenario(t *testing.T) {
	home := t.TempDir()
	pics := filepath.Join(home, "Pictures")
	now := time.Now().Truncate(time.Second)

	writeFile(t, filepath.Join(pics, "a.jpg"), now.Add(-2*time.Hour))
	writeFile(t, filepath.Join(pics, "sub", "b.png"), now.Add(-1*time.Hour))
	writeFile(t, filepath.Join(pics, "sub", ".git", "c.png"), now)

	items, err := NewProvider(newFakeFS(home)).RecentPhotos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b.png", "a.jpg"}, names(items))
	assert.Equal(t, filepath.Join(pics, "sub", "b.png"), items[0].Path)
	assert.Equal(t, ".png", items[0].Extension)
}

func TestRecentPhotosFilters(t *testing.T) {
	home := t.TempDir()
	pics := filepath.Join(home, "OneDrive", "Pictures")
	now := time.Now().Truncate(time.Second)

	writeFile(t, filepath.Join(pics, "KEEP.JPG"), now)
	writeFile(t, filepath.Join(pics, "notes.txt"), now)
	writeFile(t, filepath.Join(pics, "$RECYCLE.BIN", "trash.jpg"), now)
	writeFile(t, filepath.Join(pics, "Thumbs", "t.jpg"), now)
	writeFile(t, filepath.Join(pics, ".cache", "x.png"), now)

	items, err := NewProvider(newFakeFS(home)).RecentPhotos(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"KEEP.JPG"}, names(items))
	assert.Equal(t, ".jpg", items[0].Extension)
}

func TestRecentPhotosDepthBound(t *testing.T) {
	home := t.TempDir()
	pics := filepath.Join(home, "Pictures")

	// directories at depth 1..6 below the pictures folder
	dir := pics
	for level := 1; level <= 6; level++ {
		dir = filepath.Join(dir, fmt.Sprintf("d%d", level))
		writeFile(t, filepath.Join(dir, fmt.Sprintf("level%d.jpg", level)), time.Time{})
	}

	items, err := NewProvider(newFakeFS(home)).RecentPhotos(context.Background())
	require.NoError(t, err)

	got := names(items)
	for level := 1; level <= constants.PhotoScanDepth; level++ {
		assert.Contains(t, got, fmt.Sprintf("level%d.jpg", level))
	}
	assert.NotContains(t, got, "level6.jpg")
}

func TestRecentPhotosUnreadableBranch(t *testing.T) {
	home := t.TempDir()
	pics := filepath.Join(home, "Pictures")
	writeFile(t, filepath.Join(pics, "locked", "secret.jpg"), time.Time{})
	writeFile(t, filepath.Join(pics, "open", "one.jpg"), time.Time{})
	writeFile(t, filepath.Join(pics, "open", "deeper", "two.png"), time.Time{})

	fsys := newFakeFS(home)
	fsys.unreadable[filepath.Join(pics, "locked")] = true

	items, err := NewProvider(fsys).RecentPhotos(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one.jpg", "two.png"}, names(items))
}

func TestRecentPhotosUnreadableRoot(t *testing.T) {
	home := t.TempDir()
	pics := filepath.Join(home, "Pictures")
	writeFile(t, filepath.Join(pics, "a.jpg"), time.Time{})

	fsys := newFakeFS(home)
	fsys.unreadable[pics] = true

	_, err := NewProvider(fsys).RecentPhotos(context.Background())
	assert.True(t, errors.IsWholeCallFailure(err))
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestRecentPhotosCapped(t *testing.T) {
	home := t.TempDir()
	pics := filepath.Join(home, "Pictures")
	base := time.Now().Add(-24 * time.Hour).Truncate(time.Second)
	for i := 0; i < 120; i++ {
		sub := fmt.Sprintf("album%d", i%4)
		writeFile(t, filepath.Join(pics, sub, fmt.Sprintf("img%03d.jpg", i)), base.Add(time.Duration(i)*time.Minute))
	}

	items, err := NewProvider(newFakeFS(home)).RecentPhotos(context.Background())
	require.NoError(t, err)
	require.Len(t, items, constants.MaxRecentPhotos)
	assert.Equal(t, "img119.jpg", items[0].Name)
	assert.Equal(t, "img020.jpg", items[len(items)-1].Name)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].ModifiedAt.After(items[i-1].ModifiedAt))
	}
	for _, item := range items {
		assert.True(t, strings.HasPrefix(item.Path, pics))
	}
}

func TestRecentPhotosNoPicturesFolder(t *testing.T) {
	items, err := NewProvider(newFakeFS(t.TempDir())).RecentPhotos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
