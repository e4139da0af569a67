package fileinfo

import (
	"path/filepath"
	"strings"
)

// ParentPath returns the parent directory for a path. The second result
// is false when p is already a filesystem root (such as "/" or "C:\").
func ParentPath(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	cleaned := filepath.Clean(p)
	parent := filepath.Dir(cleaned)
	if parent == cleaned || parent == "." {
		return "", false
	}
	return parent, true
}

// DriveRoot returns the root directory for a drive letter ("D" -> "D:\")
func DriveRoot(letter string) string {
	return strings.ToUpper(letter) + `:\`
}

// SameVolume compares two drive roots case-insensitively
func SameVolume(a, b string) bool {
	return strings.EqualFold(strings.TrimRight(a, `\/`), strings.TrimRight(b, `\/`))
}

// ExtensionOf returns the extension of name including the dot
func ExtensionOf(name string) string {
	return filepath.Ext(name)
}
