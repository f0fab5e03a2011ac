package rustdoc

import (
	"maps"
	"slices"
)

// Adapter deserializes one specific rustdoc format version and projects it
// into the shared intermediate model.
type Adapter interface {
	Version() int
	Parse(raw []byte) (*Crate, error)
}

// registry is the closed set of supported format versions. Versions not
// listed here (including gaps like 47) are rejected outright: rustdoc schema
// shapes are not guaranteed compatible between adjacent versions, so there is
// no nearest-version fallback. Supporting a new version means adding one
// adapter file and one entry here.
var registry = map[int]Adapter{
	46: v46Adapter{},
	48: v48Adapter{},
	49: v49Adapter{},
	50: v50Adapter{},
	51: v51Adapter{},
	52: v52Adapter{},
	53: v53Adapter{},
}

// SupportedVersions returns the supported format versions in ascending order.
func SupportedVersions() []int {
	return slices.Sorted(maps.Keys(registry))
}

// ResolveAdapter returns the adapter for an exact format version.
func ResolveAdapter(version int) (Adapter, error) {
	adapter, ok := registry[version]
	if !ok {
		return nil, &UnsupportedVersionError{Version: version, Supported: SupportedVersions()}
	}
	return adapter, nil
}
