package navigation

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"lcars/internal/constants"
	"lcars/internal/errors"
	"lcars/internal/fileinfo"
)

// Platform selects the root view layout
type Platform int

const (
	// PlatformWindows enumerates drive letters and has a system volume
	PlatformWindows Platform = iota
	// PlatformOther exposes a single root filesystem
	PlatformOther
)

// Provider answers browsing queries against the filesystem. It keeps no
// state between calls beyond its configuration.
type Provider struct {
	fs             fileinfo.FileSystem
	platform       Platform
	volumes        VolumeSource
	homeDir        string
	recentDir      string
	sharedPictures string
	logger         *zap.Logger
}

// Option configures a Provider
type Option func(*Provider)

// WithPlatform overrides the detected platform
func WithPlatform(p Platform) Option {
	return func(pr *Provider) { pr.platform = p }
}

// WithVolumes overrides volume enumeration
func WithVolumes(v VolumeSource) Option {
	return func(pr *Provider) { pr.volumes = v }
}

// WithHomeDir pins the home directory instead of asking the filesystem
func WithHomeDir(dir string) Option {
	return func(pr *Provider) { pr.homeDir = dir }
}

// WithRecentDir sets the folder RecentFiles reads. An empty value keeps
// the platform default.
func WithRecentDir(dir string) Option {
	return func(pr *Provider) {
		if dir != "" {
			pr.recentDir = dir
		}
	}
}

// WithSharedPictures sets the machine-wide pictures fallback
func WithSharedPictures(dir string) Option {
	return func(pr *Provider) { pr.sharedPictures = dir }
}

// WithLogger sets the logger used for skipped entries and failures
func WithLogger(logger *zap.Logger) Option {
	return func(pr *Provider) {
		if logger != nil {
			pr.logger = logger
		}
	}
}

// NewProvider creates a provider over fs with platform defaults
func NewProvider(fs fileinfo.FileSystem, opts ...Option) *Provider {
	p := &Provider{
		fs:             fs,
		platform:       currentPlatform(),
		volumes:        defaultVolumes(),
		recentDir:      defaultRecentDir(),
		sharedPictures: defaultSharedPictures(),
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FirstExistingDir returns the first candidate that exists and is a
// directory. Probe failures move on to the next candidate.
func FirstExistingDir(fs fileinfo.FileSystem, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		fi, err := fs.Stat(candidate)
		if err == nil && fi.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// RootView synthesizes the top-level list: This PC, Gallery when a
// pictures folder exists, the drives, then Recent.
func (p *Provider) RootView(ctx context.Context) ([]fileinfo.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := []fileinfo.Item{fileinfo.SpecialItem(constants.ThisPCLabel, fileinfo.ThisPC())}

	if home, err := p.HomeDir(ctx); err == nil {
		candidates := append(personalPictures(home), p.sharedPictures)
		if dir, ok := FirstExistingDir(p.fs, candidates); ok {
			p.logger.Debug("gallery root found", zap.String("path", dir))
			items = append(items, fileinfo.SpecialItem(constants.GalleryLabel, fileinfo.Gallery()))
		}
	} else {
		p.logger.Debug("home directory unavailable, gallery omitted", zap.Error(err))
	}

	system := p.volumes.SystemVolume()
	if p.platform != PlatformWindows {
		items = append(items, driveItem(system))
		items = append(items, fileinfo.SpecialItem(constants.RecentLabel, fileinfo.Recent()))
		return items, nil
	}

	for _, vol := range p.volumes.Volumes() {
		if fileinfo.SameVolume(vol.Root, system.Root) {
			continue
		}
		if _, err := p.fs.Stat(vol.Root); err != nil {
			p.logger.Debug("skipping inaccessible volume", zap.String("volume", vol.Root), zap.Error(err))
			continue
		}
		items = append(items, driveItem(vol))
	}

	items = append(items, fileinfo.SpecialItem(constants.RecentLabel, fileinfo.Recent()))
	return items, nil
}

// ThisPC lists the system volume and the well-known user folders that
// exist. Each probe is independent.
func (p *Provider) ThisPC(ctx context.Context) ([]fileinfo.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []fileinfo.Item

	system := p.volumes.SystemVolume()
	if _, err := p.fs.Stat(system.Root); err == nil {
		items = append(items, driveItem(system))
	} else {
		p.logger.Debug("system volume not accessible", zap.String("volume", system.Root), zap.Error(err))
	}

	home, err := p.HomeDir(ctx)
	if err != nil {
		p.logger.Debug("home directory unavailable", zap.Error(err))
		return items, nil
	}

	for _, name := range []string{"Desktop", "Documents"} {
		dir := filepath.Join(home, name)
		if _, err := p.fs.Stat(dir); err != nil {
			p.logger.Debug("folder not accessible", zap.String("path", dir), zap.Error(err))
			continue
		}
		items = append(items, fileinfo.Item{Name: name, Path: dir, Kind: fileinfo.KindDirectory})
	}

	if dir, ok := FirstExistingDir(p.fs, personalPictures(home)); ok {
		items = append(items, fileinfo.Item{Name: constants.PicturesName, Path: dir, Kind: fileinfo.KindDirectory})
	}

	return items, nil
}

// Parent returns the directory containing path. ok is false when path is
// already a filesystem root.
func (p *Provider) Parent(ctx context.Context, path string) (parent string, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if path == "" {
		return "", false, errors.NewFileSystemError("get_parent", path, "empty path", nil)
	}
	parent, ok = fileinfo.ParentPath(path)
	return parent, ok, nil
}

// HomeDir returns the user's home directory
func (p *Provider) HomeDir(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.homeDir != "" {
		return p.homeDir, nil
	}
	home, err := p.fs.UserHomeDir()
	if err != nil {
		return "", errors.NewFileSystemError("get_home_dir", "", "cannot determine home directory", err)
	}
	return home, nil
}

// PathExists reports whether path can be stat'ed
func (p *Provider) PathExists(ctx context.Context, path string) bool {
	if ctx.Err() != nil || path == "" {
		return false
	}
	_, err := p.fs.Stat(path)
	return err == nil
}

// Info returns metadata for a single file or directory
func (p *Provider) Info(ctx context.Context, path string) (fileinfo.Info, error) {
	if err := ctx.Err(); err != nil {
		return fileinfo.Info{}, err
	}
	fi, err := p.fs.Stat(path)
	if err != nil {
		p.logger.Error("cannot read item info", zap.String("path", path), zap.Error(err))
		return fileinfo.Info{}, errors.NewFileSystemError("get_info", path, "cannot read item info", err)
	}
	return fileinfo.NewInfo(path, fi), nil
}

func personalPictures(home string) []string {
	return []string{
		filepath.Join(home, "Pictures"),
		filepath.Join(home, "My Pictures"),
		filepath.Join(home, "OneDrive", "Pictures"),
	}
}

func driveItem(v Volume) fileinfo.Item {
	return fileinfo.Item{Name: v.Name, Path: v.Root, Kind: fileinfo.KindDrive}
}
