package navigation

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"lcars/internal/constants"
	"lcars/internal/errors"
	"lcars/internal/fileinfo"
)

const (
	imagePattern   = "*.{jpg,jpeg,png,gif,bmp,webp,svg,heic,heif}"
	skipDirPattern = "{.*,$*,thumbs}"
)

// IsImageName reports whether name has one of the recognized image
// extensions, ignoring case.
func IsImageName(name string) bool {
	ok, _ := doublestar.Match(imagePattern, strings.ToLower(name))
	return ok
}

// skipScanDir reports whether the photo scan stays out of a directory:
// dot-directories, $-prefixed system folders, and thumbnail caches.
func skipScanDir(name string) bool {
	ok, _ := doublestar.Match(skipDirPattern, strings.ToLower(name))
	return ok
}

// RecentPhotos scans the pictures folder for images, newest first.
// The scan reads directories at most PhotoScanDepth levels below the
// pictures folder; unreadable branches are skipped.
func (p *Provider) RecentPhotos(ctx context.Context) ([]fileinfo.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	home, err := p.HomeDir(ctx)
	if err != nil {
		return nil, err
	}
	root, ok := FirstExistingDir(p.fs, personalPictures(home))
	if !ok {
		return []fileinfo.Item{}, nil
	}
	root = filepath.Clean(root)

	var (
		mu     sync.Mutex
		photos []fileinfo.Item
	)

	walkErr := p.fs.Walk(root, constants.PhotoScanDepth, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			p.logger.Debug("skipping unreadable branch", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path != root && skipScanDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !IsImageName(d.Name()) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			p.logger.Debug("skipping photo", zap.String("path", path), zap.Error(err))
			return nil
		}

		item := fileinfo.Item{
			Name:       d.Name(),
			Path:       path,
			Kind:       fileinfo.KindFile,
			Size:       fi.Size(),
			ModifiedAt: fi.ModTime(),
			Extension:  strings.ToLower(filepath.Ext(d.Name())),
		}

		mu.Lock()
		photos = append(photos, item)
		mu.Unlock()
		return nil
	})
	if walkErr != nil {
		p.logger.Error("photo scan failed", zap.String("root", root), zap.Error(walkErr))
		return nil, errors.NewFileSystemError("recent_photos", root, "cannot scan pictures folder", walkErr)
	}

	sort.SliceStable(photos, func(i, j int) bool {
		if !photos[i].ModifiedAt.Equal(photos[j].ModifiedAt) {
			return photos[i].ModifiedAt.After(photos[j].ModifiedAt)
		}
		return photos[i].Path < photos[j].Path
	})

	if len(photos) > constants.MaxRecentPhotos {
		photos = photos[:constants.MaxRecentPhotos]
	}
	if photos == nil {
		photos = []fileinfo.Item{}
	}
	return photos, nil
}
