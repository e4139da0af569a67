//go:build windows

package navigation

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"

	"lcars/internal/fileinfo"
)

const driveLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func currentPlatform() Platform {
	return PlatformWindows
}

// logicalDrives lists drive letters reported by GetLogicalDrives, or
// every letter when the call fails.
type logicalDrives struct{}

func (logicalDrives) Volumes() []Volume {
	mask, err := windows.GetLogicalDrives()
	var vols []Volume
	for i, letter := range driveLetters {
		if err == nil && mask&(1<<uint(i)) == 0 {
			continue
		}
		vols = append(vols, Volume{
			Name: string(letter) + ": Drive",
			Root: fileinfo.DriveRoot(string(letter)),
		})
	}
	return vols
}

func (logicalDrives) SystemVolume() Volume {
	drive := strings.TrimRight(os.Getenv("SystemDrive"), `\`)
	if len(drive) != 2 || drive[1] != ':' {
		drive = "C:"
	}
	letter := strings.ToUpper(drive[:1])
	return Volume{
		Name: letter + ": (Local Disk)",
		Root: fileinfo.DriveRoot(letter),
	}
}

func defaultVolumes() VolumeSource {
	return logicalDrives{}
}

func defaultRecentDir() string {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		appData = filepath.Join(home, "AppData", "Roaming")
	}
	return filepath.Join(appData, "Microsoft", "Windows", "Recent")
}

func defaultSharedPictures() string {
	public := os.Getenv("PUBLIC")
	if public == "" {
		public = `C:\Users\Public`
	}
	return filepath.Join(public, "Pictures")
}
