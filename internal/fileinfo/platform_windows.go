//go:build windows

package fileinfo

import (
	"golang.org/x/sys/windows"
)

// IsWindowsHidden checks if a file has the Windows hidden attribute
func IsWindowsHidden(path string) bool {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}

	attrs, err := windows.GetFileAttributes(pathPtr)
	if err != nil {
		return false
	}

	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
