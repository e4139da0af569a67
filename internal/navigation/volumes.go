package navigation

// Volume is a mountable root shown as a drive
type Volume struct {
	Name string
	Root string
}

// VolumeSource enumerates candidate volumes. Candidates are probed by
// the provider, so a source may list volumes that turn out to be absent.
type VolumeSource interface {
	Volumes() []Volume
	SystemVolume() Volume
}

// StaticVolumes is a fixed VolumeSource
type StaticVolumes struct {
	System Volume
	All    []Volume
}

func (s StaticVolumes) Volumes() []Volume    { return s.All }
func (s StaticVolumes) SystemVolume() Volume { return s.System }
