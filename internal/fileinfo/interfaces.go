package fileinfo

import (
	"io/fs"
	"os"

	"github.com/charlievieth/fastwalk"
)

// FileSystem interface abstracts file system operations for better testability
type FileSystem interface {
	ReadDir(path string) ([]os.DirEntry, error)
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	UserHomeDir() (string, error)
	// Walk visits root and its descendants, reading directories no deeper
	// than maxDepth below root. fn may be called concurrently.
	Walk(root string, maxDepth int, fn fs.WalkDirFunc) error
}

// RealFileSystem implements FileSystem using real OS operations
type RealFileSystem struct{}

func (rfs *RealFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (rfs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (rfs *RealFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

func (rfs *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Walk uses fastwalk. Symlinks are reported but never traversed, and a
// directory at depth d is read only while d <= maxDepth.
func (rfs *RealFileSystem) Walk(root string, maxDepth int, fn fs.WalkDirFunc) error {
	conf := fastwalk.Config{
		Follow:   false,
		MaxDepth: maxDepth + 1,
	}
	return fastwalk.Walk(&conf, root, fn)
}
