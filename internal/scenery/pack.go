// Package scenery models discovered scenery packs and infers what kind of
// content each one is. Classification is a pure, total function of the pack's
// folder name and on-disk structure; it never fails, it only falls back to
// Unknown. A separate healing pass can promote an Unknown pack using counted
// content signals scraped from a best-effort peek at the pack's data.
package scenery

// Status describes whether a pack currently participates in rendering.
type Status int

const (
	// Active means the pack is enabled in scenery_packs.ini.
	Active Status = iota
	// Disabled means the pack is present but listed as SCENERY_PACK_DISABLED.
	Disabled
	// DuplicateHidden means a later manifest entry shadows this one by name.
	DuplicateHidden
)

// String returns the manifest-facing label for the status.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Disabled:
		return "disabled"
	case DuplicateHidden:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Tile identifies one degree-grid cell of coverage, e.g. +47-123.
type Tile struct {
	Lat int
	Lon int
}

// Pack is one discovered scenery package.
//
// Name is taken from the owning folder name and must be preserved
// byte-for-byte (including trailing whitespace): it is both the key into the
// override map and a filesystem path component.
type Pack struct {
	Name     string
	Path     string
	Status   Status
	Category Category
	Tiles    []Tile
	Region   string
}

// Category is the coarse structural kind of a scenery pack. The zero value
// is Unknown.
type Category int

const (
	Unknown Category = iota
	EarthAirports
	MarsAirports
	CustomAirport
	AirportOverlay
	GlobalAirport
	Library
	Landmark
	Overlay
	RegionalOverlay
	EarthScenery
	SpecificMesh
	Ortho
	OrthoBase
	Mesh
	GlobalBase
	Group
)

// categoryPriority is the fallback load priority per category. Lower values
// load earlier. Used by the sorter only when no score model is available or
// when scores tie.
var categoryPriority = map[Category]int{
	EarthAirports:   10,
	MarsAirports:    10,
	CustomAirport:   13,
	AirportOverlay:  16,
	GlobalAirport:   20,
	Library:         30,
	Landmark:        35,
	Overlay:         40,
	RegionalOverlay: 40,
	EarthScenery:    45,
	SpecificMesh:    48,
	Ortho:           50,
	OrthoBase:       50,
	Mesh:            60,
	GlobalBase:      80,
	Group:           100,
	Unknown:         100,
}

// protected categories must never be demoted by later structural evidence.
var protected = map[Category]bool{
	GlobalAirport: true,
	Library:       true,
	GlobalBase:    true,
	Landmark:      true,
}

// Priority returns the category's fallback load priority (lower loads earlier).
func (c Category) Priority() int {
	if p, ok := categoryPriority[c]; ok {
		return p
	}
	return categoryPriority[Unknown]
}

// Protected reports whether the category may never be demoted once assigned.
func (c Category) Protected() bool {
	return protected[c]
}

// String returns a short human-readable label.
func (c Category) String() string {
	switch c {
	case EarthAirports:
		return "earth airports"
	case MarsAirports:
		return "mars airports"
	case CustomAirport:
		return "custom airport"
	case AirportOverlay:
		return "airport overlay"
	case GlobalAirport:
		return "global airports"
	case Library:
		return "library"
	case Landmark:
		return "landmark"
	case Overlay:
		return "overlay"
	case RegionalOverlay:
		return "regional overlay"
	case EarthScenery:
		return "earth scenery"
	case SpecificMesh:
		return "airport mesh"
	case Ortho:
		return "ortho"
	case OrthoBase:
		return "ortho base"
	case Mesh:
		return "mesh"
	case GlobalBase:
		return "global base"
	case Group:
		return "group"
	default:
		return "unknown"
	}
}
