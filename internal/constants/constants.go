package constants

import "time"

// Application constants
const (
	ApplicationName    = "lcars"
	ApplicationTitle   = "LCARS Browser"
	ApplicationVersion = "1.0.0"
	ApplicationID      = "io.lcars.browser"
)

// UI constants
const (
	// Window dimensions
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 800

	// Cursor settings
	DefaultCursorThickness = 2
	DefaultCursorStyle     = "background"

	// Keyboard navigation
	FastNavigationStep = 20
)

// Virtual location labels shown in the root view
const (
	ThisPCLabel  = "This PC"
	GalleryLabel = "Gallery"
	RecentLabel  = "Recent"
	PicturesName = "Pictures"
)

// Legacy sentinel tokens for virtual locations
const (
	ThisPCToken  = "THIS_PC"
	GalleryToken = "GALLERY"
	RecentToken  = "RECENT"
)

// Query limits
const (
	MaxRecentFiles  = 100
	MaxRecentPhotos = 100
	PhotoScanDepth  = 5
	ShortcutSuffix  = ".lnk"
)

// Network probe defaults
const (
	DefaultProbeHost     = "google.com"
	DefaultProbeURL      = "https://dns.google/resolve?name=google.com"
	DefaultProbeTimeout  = 5 * time.Second
	DefaultCheckInterval = 10 * time.Second
)

// File size constants
const (
	FileSizeUnit = 1024
)

// Selection background color (RGBA)
var SelectionBackgroundColor = [4]uint8{255, 153, 0, 90}

// Theme constants
const (
	DefaultFontSize  = 14
	DarkThemeDefault = true
)

// File system constants
const (
	RootPath = "/"
)

// Configuration constants
const (
	ConfigFileName         = "config.json"
	EnvPrefix              = "lcars"
	DefaultShowHiddenFiles = true
	DefaultFrameless       = true
)
