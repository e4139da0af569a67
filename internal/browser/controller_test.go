package browser

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "lcars/internal/errors"
	"lcars/internal/fileinfo"
)

type fakeNav struct {
	mu       sync.Mutex
	root     []fileinfo.Item
	thisPC   []fileinfo.Item
	photos   []fileinfo.Item
	recent   []fileinfo.Item
	dirs     map[string][]fileinfo.Item
	parents  map[string]string
	home     string
	homeErr  error
	info     map[string]fileinfo.Info
	gates    map[string]chan struct{}
	listings []string
}

func newFakeNav() *fakeNav {
	return &fakeNav{
		root: []fileinfo.Item{
			fileinfo.SpecialItem("This PC", fileinfo.ThisPC()),
			fileinfo.SpecialItem("Gallery", fileinfo.Gallery()),
			{Name: "D: Drive", Path: `D:\`, Kind: fileinfo.KindDrive},
			fileinfo.SpecialItem("Recent", fileinfo.Recent()),
		},
		thisPC:  []fileinfo.Item{{Name: "Desktop", Path: "/home/u/Desktop", Kind: fileinfo.KindDirectory}},
		photos:  []fileinfo.Item{{Name: "a.jpg", Path: "/home/u/Pictures/a.jpg", Kind: fileinfo.KindFile}},
		recent:  []fileinfo.Item{},
		dirs:    map[string][]fileinfo.Item{},
		parents: map[string]string{},
		info:    map[string]fileinfo.Info{},
		gates:   map[string]chan struct{}{},
		home:    "/home/u",
	}
}

func (f *fakeNav) RootView(ctx context.Context) ([]fileinfo.Item, error) { return f.root, nil }
func (f *fakeNav) ThisPC(ctx context.Context) ([]fileinfo.Item, error)   { return f.thisPC, nil }
func (f *fakeNav) RecentFiles(ctx context.Context) ([]fileinfo.Item, error) {
	return f.recent, nil
}
func (f *fakeNav) RecentPhotos(ctx context.Context) ([]fileinfo.Item, error) {
	return f.photos, nil
}

func (f *fakeNav) ListDirectory(ctx context.Context, dir string) ([]fileinfo.Item, error) {
	f.mu.Lock()
	f.listings = append(f.listings, dir)
	gate := f.gates[dir]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	items, ok := f.dirs[dir]
	if !ok {
		return nil, apperrors.NewFileSystemError("list_directory", dir, "cannot read directory", fmt.Errorf("no such directory"))
	}
	return items, nil
}

func (f *fakeNav) Parent(ctx context.Context, path string) (string, bool, error) {
	parent, ok := f.parents[path]
	return parent, ok, nil
}

func (f *fakeNav) HomeDir(ctx context.Context) (string, error) {
	if f.homeErr != nil {
		return "", f.homeErr
	}
	return f.home, nil
}

func (f *fakeNav) Info(ctx context.Context, path string) (fileinfo.Info, error) {
	info, ok := f.info[path]
	if !ok {
		return fileinfo.Info{}, apperrors.NewFileSystemError("get_info", path, "cannot read item info", nil)
	}
	return info, nil
}

func TestLoadRoot(t *testing.T) {
	nav := newFakeNav()
	c := NewController(nav, nil)

	require.NoError(t, c.Refresh(context.Background()))
	st := c.State()
	assert.Equal(t, fileinfo.Root(), st.Location)
	assert.Len(t, st.Items, 4)
	assert.Equal(t, "Found 4 drive(s)", st.Status)
	assert.False(t, st.Busy)
}

func TestOpenSpecialItems(t *testing.T) {
	nav := newFakeNav()
	c := NewController(nav, nil)
	ctx := context.Background()

	require.NoError(t, c.Open(ctx, nav.root[0]))
	assert.Equal(t, fileinfo.ThisPC(), c.State().Location)
	assert.Equal(t, "1 item(s)", c.State().Status)

	require.NoError(t, c.Open(ctx, nav.root[1]))
	assert.Equal(t, fileinfo.Gallery(), c.State().Location)
	assert.Equal(t, "1 photo(s)", c.State().Status)

	require.NoError(t, c.Open(ctx, nav.root[3]))
	assert.Equal(t, fileinfo.Recent(), c.State().Location)
	assert.Equal(t, "0 recent file(s)", c.State().Status)
	assert.Empty(t, c.State().Items)
}

func TestOpenDirectoryAndDrive(t *testing.T) {
	nav := newFakeNav()
	nav.dirs[`D:\`] = []fileinfo.Item{{Name: "games", Path: `D:\games`, Kind: fileinfo.KindDirectory}}
	nav.dirs[`D:\games`] = []fileinfo.Item{}
	c := NewController(nav, nil)
	ctx := context.Background()

	require.NoError(t, c.Open(ctx, nav.root[2]))
	assert.Equal(t, fileinfo.RealPath(`D:\`), c.State().Location)

	require.NoError(t, c.Open(ctx, c.State().Items[0]))
	assert.Equal(t, fileinfo.RealPath(`D:\games`), c.State().Location)
	assert.Equal(t, "0 item(s)", c.State().Status)
}

func TestOpenFileShowsInfoOnly(t *testing.T) {
	nav := newFakeNav()
	nav.dirs["/docs"] = []fileinfo.Item{{Name: "a.txt", Path: "/docs/a.txt", Kind: fileinfo.KindFile}}
	nav.info["/docs/a.txt"] = fileinfo.Info{Name: "a.txt", Path: "/docs/a.txt", Kind: fileinfo.KindFile, Size: 2048, Extension: ".txt"}
	c := NewController(nav, nil)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, fileinfo.RealPath("/docs")))
	before := c.State()

	require.NoError(t, c.Open(ctx, before.Items[0]))
	after := c.State()
	assert.Equal(t, before.Location, after.Location)
	assert.Equal(t, before.Items, after.Items)
	assert.Contains(t, after.Status, "Name: a.txt")
	assert.Contains(t, after.Status, "Size: 2.0 KB")
	assert.Contains(t, after.Status, "Extension: .txt")

	err := c.Open(ctx, fileinfo.Item{Name: "gone", Path: "/docs/gone", Kind: fileinfo.KindFile})
	assert.Error(t, err)
	assert.Contains(t, c.State().Status, "Error getting info:")
	assert.Equal(t, before.Items, c.State().Items)
}

func TestFailedQueryLeavesStateUnchanged(t *testing.T) {
	nav := newFakeNav()
	nav.dirs["/ok"] = []fileinfo.Item{{Name: "x", Path: "/ok/x", Kind: fileinfo.KindFile}}
	c := NewController(nav, nil)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, fileinfo.RealPath("/ok")))

	err := c.Load(ctx, fileinfo.RealPath("/denied"))
	require.Error(t, err)
	assert.True(t, apperrors.IsWholeCallFailure(err))

	st := c.State()
	assert.Equal(t, fileinfo.RealPath("/ok"), st.Location)
	assert.Len(t, st.Items, 1)
	assert.Contains(t, st.Status, "Error: ")
	assert.False(t, st.Busy)
}

func TestUp(t *testing.T) {
	nav := newFakeNav()
	nav.dirs["/home/u/docs"] = []fileinfo.Item{}
	nav.dirs["/home/u"] = []fileinfo.Item{}
	nav.dirs["/"] = []fileinfo.Item{}
	nav.parents["/home/u/docs"] = "/home/u"
	nav.parents["/weird"] = "/weird"
	nav.dirs["/weird"] = []fileinfo.Item{}
	c := NewController(nav, nil)
	ctx := context.Background()

	// root is a no-op
	require.NoError(t, c.Up(ctx))
	assert.Equal(t, fileinfo.Root(), c.State().Location)
	assert.Empty(t, c.State().Items)

	require.NoError(t, c.Load(ctx, fileinfo.RealPath("/home/u/docs")))
	require.NoError(t, c.Up(ctx))
	assert.Equal(t, fileinfo.RealPath("/home/u"), c.State().Location)

	// no parent recorded for "/" means it is a root
	require.NoError(t, c.Load(ctx, fileinfo.RealPath("/")))
	require.NoError(t, c.Up(ctx))
	assert.Equal(t, fileinfo.Root(), c.State().Location)

	// parent equal to the path also returns to the root view
	require.NoError(t, c.Load(ctx, fileinfo.RealPath("/weird")))
	require.NoError(t, c.Up(ctx))
	assert.Equal(t, fileinfo.Root(), c.State().Location)

	for _, loc := range []fileinfo.Location{fileinfo.ThisPC(), fileinfo.Gallery(), fileinfo.Recent()} {
		require.NoError(t, c.Load(ctx, loc))
		require.NoError(t, c.Up(ctx))
		assert.Equal(t, fileinfo.Root(), c.State().Location, loc.String())
	}
}

func TestHome(t *testing.T) {
	nav := newFakeNav()
	nav.dirs["/home/u"] = []fileinfo.Item{{Name: "docs", Path: "/home/u/docs", Kind: fileinfo.KindDirectory}}
	c := NewController(nav, nil)
	ctx := context.Background()

	require.NoError(t, c.Home(ctx))
	assert.Equal(t, fileinfo.RealPath("/home/u"), c.State().Location)
	assert.Len(t, c.State().Items, 1)

	nav.homeErr = apperrors.NewFileSystemError("get_home_dir", "", "cannot determine home directory", nil)
	require.Error(t, c.Home(ctx))
	assert.Equal(t, fileinfo.RealPath("/home/u"), c.State().Location)
	assert.Contains(t, c.State().Status, "Error: ")
}

func TestRefreshReissuesCurrentQuery(t *testing.T) {
	nav := newFakeNav()
	nav.dirs["/data"] = []fileinfo.Item{}
	c := NewController(nav, nil)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, fileinfo.RealPath("/data")))
	nav.dirs["/data"] = []fileinfo.Item{{Name: "new.txt", Path: "/data/new.txt", Kind: fileinfo.KindFile}}

	require.NoError(t, c.Refresh(ctx))
	assert.Equal(t, []string{"/data", "/data"}, nav.listings)
	assert.Len(t, c.State().Items, 1)
}

func TestLastWriteWins(t *testing.T) {
	nav := newFakeNav()
	nav.dirs["/slow"] = []fileinfo.Item{{Name: "stale", Path: "/slow/stale", Kind: fileinfo.KindFile}}
	nav.dirs["/fast"] = []fileinfo.Item{{Name: "fresh", Path: "/fast/fresh", Kind: fileinfo.KindFile}}
	gate := make(chan struct{})
	nav.gates["/slow"] = gate
	c := NewController(nav, nil)
	ctx := context.Background()

	slowDone := make(chan error, 1)
	go func() { slowDone <- c.Load(ctx, fileinfo.RealPath("/slow")) }()

	require.Eventually(t, func() bool {
		nav.mu.Lock()
		defer nav.mu.Unlock()
		return len(nav.listings) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, c.Load(ctx, fileinfo.RealPath("/fast")))
	close(gate)

	assert.ErrorIs(t, <-slowDone, ErrSuperseded)
	st := c.State()
	assert.Equal(t, fileinfo.RealPath("/fast"), st.Location)
	require.Len(t, st.Items, 1)
	assert.Equal(t, "fresh", st.Items[0].Name)
	assert.False(t, st.Busy)
}

func TestOnChangeNotifications(t *testing.T) {
	nav := newFakeNav()
	c := NewController(nav, nil)

	var mu sync.Mutex
	var seen []State
	c.OnChange(func(s State) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	require.NoError(t, c.Load(context.Background(), fileinfo.ThisPC()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.True(t, seen[0].Busy)
	assert.Equal(t, "Loading This PC...", seen[0].Status)
	assert.False(t, seen[1].Busy)
	assert.Equal(t, fileinfo.ThisPC(), seen[1].Location)
}

func TestStateIsACopy(t *testing.T) {
	nav := newFakeNav()
	c := NewController(nav, nil)
	require.NoError(t, c.Refresh(context.Background()))

	st := c.State()
	st.Items[0].Name = "mutated"
	assert.Equal(t, "This PC", c.State().Items[0].Name)
}

func TestFormatInfo(t *testing.T) {
	modified := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	out := FormatInfo(fileinfo.Info{
		Name:       "photos",
		Path:       "/home/u/photos",
		Kind:       fileinfo.KindDirectory,
		Size:       4096,
		ModifiedAt: modified,
	})
	assert.Equal(t, "Name: photos\nType: directory\nPath: /home/u/photos\nSize: 4.0 KB\nModified: 2024-05-01 09:30\nCreated: ", out)
}

func TestLoadZeroLocation(t *testing.T) {
	c := NewController(newFakeNav(), nil)
	assert.Error(t, c.Load(context.Background(), fileinfo.Location{}))
}
