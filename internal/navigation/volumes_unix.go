//go:build !windows

package navigation

import (
	"lcars/internal/constants"
)

func currentPlatform() Platform {
	return PlatformOther
}

func defaultVolumes() VolumeSource {
	root := Volume{Name: constants.RootPath, Root: constants.RootPath}
	return StaticVolumes{System: root, All: []Volume{root}}
}

// Only a configured folder feeds RecentFiles outside Windows.
func defaultRecentDir() string {
	return ""
}

func defaultSharedPictures() string {
	return ""
}
