package fileinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"lcars/internal/constants"
)

// Kind represents the kind of a navigable item
type Kind int

const (
	KindSpecial Kind = iota
	KindDrive
	KindDirectory
	KindFile
)

// String returns the wire name of the kind
func (k Kind) String() string {
	switch k {
	case KindSpecial:
		return "special"
	case KindDrive:
		return "drive"
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Navigable reports whether activating an item of this kind changes location
func (k Kind) Navigable() bool {
	return k != KindFile
}

// Item is one entry shown by the browser. Special items carry a virtual
// Target and no Path; every other kind carries a real filesystem Path.
type Item struct {
	Name       string    `json:"name"`
	Path       string    `json:"path,omitempty"`
	Kind       Kind      `json:"type"`
	Target     Location  `json:"target,omitzero"`
	Size       int64     `json:"size,omitempty"`
	ModifiedAt time.Time `json:"modified,omitzero"`
	AccessedAt time.Time `json:"accessed,omitzero"`
	CreatedAt  time.Time `json:"created,omitzero"`
	Extension  string    `json:"extension,omitempty"`
	IsHidden   bool      `json:"isHidden,omitempty"`
	IsShortcut bool      `json:"isShortcut,omitempty"`
}

// Location returns where activating the item leads. Files have no
// location of their own and return the zero Location.
func (i Item) Location() Location {
	switch i.Kind {
	case KindSpecial:
		return i.Target
	case KindDrive, KindDirectory:
		return RealPath(i.Path)
	default:
		return Location{}
	}
}

// SpecialItem builds a virtual entry pointing at loc
func SpecialItem(name string, loc Location) Item {
	return Item{Name: name, Kind: KindSpecial, Target: loc}
}

// Info is the metadata record returned by item-info lookups
type Info struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Kind       Kind      `json:"type"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"created,omitzero"`
	ModifiedAt time.Time `json:"modified,omitzero"`
	AccessedAt time.Time `json:"accessed,omitzero"`
	Extension  string    `json:"extension,omitempty"`
}

// NewInfo builds an Info record from stat results
func NewInfo(path string, fi os.FileInfo) Info {
	accessed, created := FileTimes(fi)
	info := Info{
		Name:       filepath.Base(path),
		Path:       path,
		Kind:       KindFile,
		Size:       fi.Size(),
		CreatedAt:  created,
		ModifiedAt: fi.ModTime(),
		AccessedAt: accessed,
	}
	if fi.IsDir() {
		info.Kind = KindDirectory
	} else {
		info.Extension = filepath.Ext(path)
	}
	return info
}

// IsHiddenName reports whether a name follows the dot-file convention
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ShouldDisplay applies the show-hidden-files preference to an item.
// On Windows the hidden file attribute is honored as well.
func ShouldDisplay(item Item, showHidden bool) bool {
	if showHidden || item.Kind == KindSpecial || item.Kind == KindDrive {
		return true
	}
	if item.IsHidden {
		return false
	}
	if runtime.GOOS == "windows" && IsWindowsHidden(item.Path) {
		return false
	}
	return true
}

// FormatFileSize formats file size in human-readable format
func FormatFileSize(size int64) string {
	const unit = constants.FileSizeUnit
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGT"[exp])
}

// FormatTimestamp renders a timestamp for list rows; zero times render empty
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}
