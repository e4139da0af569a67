package navigation

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"lcars/internal/errors"
	"lcars/internal/fileinfo"
)

// ListDirectory returns the direct children of dir, directories first and
// then by case-insensitive name. Children that cannot be stat'ed are left
// out; failing to open dir itself is an error.
func (p *Provider) ListDirectory(ctx context.Context, dir string) ([]fileinfo.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		p.logger.Error("cannot list directory", zap.String("path", dir), zap.Error(err))
		return nil, errors.NewFileSystemError("list_directory", dir, "cannot read directory", err)
	}

	items := make([]fileinfo.Item, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		fullPath := filepath.Join(dir, name)

		fi, err := p.fs.Stat(fullPath)
		if err != nil {
			p.logger.Debug("skipping entry", zap.String("path", fullPath), zap.Error(err))
			continue
		}

		item := fileinfo.Item{
			Name:       name,
			Path:       fullPath,
			Kind:       fileinfo.KindFile,
			Size:       fi.Size(),
			ModifiedAt: fi.ModTime(),
			IsHidden:   fileinfo.IsHiddenName(name),
		}
		if fi.IsDir() {
			item.Kind = fileinfo.KindDirectory
		} else {
			item.Extension = fileinfo.ExtensionOf(name)
		}
		items = append(items, item)
	}

	SortListing(items)
	return items, nil
}

// SortListing orders items with directories before everything else and
// then by case-insensitive name.
func SortListing(items []fileinfo.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		di := items[i].Kind == fileinfo.KindDirectory
		dj := items[j].Kind == fileinfo.KindDirectory
		if di != dj {
			return di
		}
		li, lj := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if li != lj {
			return li < lj
		}
		return items[i].Name < items[j].Name
	})
}
