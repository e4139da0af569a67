package fileinfo

import (
	"lcars/internal/constants"
)

// LocationKind tags the variant held by a Location
type LocationKind int

const (
	locationNone LocationKind = iota
	LocationRoot
	LocationThisPC
	LocationGallery
	LocationRecent
	LocationPath
)

// Location is where the browser currently is: the synthesized root,
// one of the virtual folders, or a real directory. Virtual locations
// never compare equal to a real path, including one spelled like a
// legacy token.
type Location struct {
	kind LocationKind
	path string
}

// Root returns the synthesized top-level view
func Root() Location { return Location{kind: LocationRoot} }

// ThisPC returns the virtual This PC folder
func ThisPC() Location { return Location{kind: LocationThisPC} }

// Gallery returns the virtual recent-photos folder
func Gallery() Location { return Location{kind: LocationGallery} }

// Recent returns the virtual recent-files folder
func Recent() Location { return Location{kind: LocationRecent} }

// RealPath returns a location for a real directory
func RealPath(path string) Location { return Location{kind: LocationPath, path: path} }

// Kind returns the variant tag
func (l Location) Kind() LocationKind { return l.kind }

// Path returns the directory for LocationPath and "" otherwise
func (l Location) Path() string { return l.path }

// IsZero reports whether l was never set
func (l Location) IsZero() bool { return l.kind == locationNone }

// IsVirtual reports whether l is one of the virtual folders
func (l Location) IsVirtual() bool {
	switch l.kind {
	case LocationThisPC, LocationGallery, LocationRecent:
		return true
	}
	return false
}

// String renders the legacy token form, used for logs and JSON
func (l Location) String() string {
	switch l.kind {
	case LocationRoot:
		return ""
	case LocationThisPC:
		return constants.ThisPCToken
	case LocationGallery:
		return constants.GalleryToken
	case LocationRecent:
		return constants.RecentToken
	case LocationPath:
		return l.path
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Location) UnmarshalText(text []byte) error {
	*l = ParseLocation(string(text))
	return nil
}

// ParseLocation maps legacy tokens back to locations. The empty string
// is the root view; anything else is a real path.
func ParseLocation(token string) Location {
	switch token {
	case "":
		return Root()
	case constants.ThisPCToken:
		return ThisPC()
	case constants.GalleryToken:
		return Gallery()
	case constants.RecentToken:
		return Recent()
	default:
		return RealPath(token)
	}
}

// Title returns a human-readable heading for the location
func (l Location) Title() string {
	switch l.kind {
	case LocationRoot:
		return "Home"
	case LocationThisPC:
		return constants.ThisPCLabel
	case LocationGallery:
		return constants.GalleryLabel
	case LocationRecent:
		return constants.RecentLabel
	default:
		return l.path
	}
}
