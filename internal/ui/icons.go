package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"lcars/internal/fileinfo"
	"lcars/internal/navigation"
)

// ItemIcon picks the row icon for an item
func ItemIcon(item fileinfo.Item) fyne.Resource {
	switch item.Kind {
	case fileinfo.KindSpecial:
		switch item.Target.Kind() {
		case fileinfo.LocationThisPC:
			return theme.ComputerIcon()
		case fileinfo.LocationGallery:
			return theme.MediaPhotoIcon()
		case fileinfo.LocationRecent:
			return theme.HistoryIcon()
		}
		return theme.HomeIcon()
	case fileinfo.KindDrive:
		return theme.StorageIcon()
	case fileinfo.KindDirectory:
		return theme.FolderIcon()
	}

	switch {
	case item.IsShortcut:
		return theme.FileApplicationIcon()
	case navigation.IsImageName(item.Name):
		return theme.FileImageIcon()
	}
	return theme.FileIcon()
}
