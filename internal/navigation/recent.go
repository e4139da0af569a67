package navigation

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"lcars/internal/constants"
	"lcars/internal/errors"
	"lcars/internal/fileinfo"
)

// RecentFiles lists the recent-items folder, most recently accessed
// first. A missing folder yields an empty result.
func (p *Provider) RecentFiles(ctx context.Context) ([]fileinfo.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.recentDir == "" {
		return []fileinfo.Item{}, nil
	}
	if fi, err := p.fs.Stat(p.recentDir); err != nil || !fi.IsDir() {
		p.logger.Debug("recent folder not found", zap.String("path", p.recentDir))
		return []fileinfo.Item{}, nil
	}

	entries, err := p.fs.ReadDir(p.recentDir)
	if err != nil {
		p.logger.Error("cannot read recent folder", zap.String("path", p.recentDir), zap.Error(err))
		return nil, errors.NewFileSystemError("recent_files", p.recentDir, "cannot read recent folder", err)
	}

	items := make([]fileinfo.Item, 0, len(entries))
	for _, entry := range entries {
		fullPath := filepath.Join(p.recentDir, entry.Name())
		fi, err := p.fs.Stat(fullPath)
		if err != nil {
			p.logger.Debug("skipping recent entry", zap.String("path", fullPath), zap.Error(err))
			continue
		}
		if fi.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		shortcut := ext == constants.ShortcutSuffix
		if shortcut {
			name = name[:len(name)-len(constants.ShortcutSuffix)]
		}

		accessed, _ := fileinfo.FileTimes(fi)
		items = append(items, fileinfo.Item{
			Name:       name,
			Path:       fullPath,
			Kind:       fileinfo.KindFile,
			Size:       fi.Size(),
			ModifiedAt: fi.ModTime(),
			AccessedAt: accessed,
			Extension:  ext,
			IsHidden:   fileinfo.IsHiddenName(name),
			IsShortcut: shortcut,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].AccessedAt.Equal(items[j].AccessedAt) {
			return items[i].AccessedAt.After(items[j].AccessedAt)
		}
		return items[i].Path < items[j].Path
	})

	if len(items) > constants.MaxRecentFiles {
		items = items[:constants.MaxRecentFiles]
	}
	return items, nil
}
