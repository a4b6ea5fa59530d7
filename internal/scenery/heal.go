package scenery

// Descriptor carries counted content signals from a best-effort peek into a
// pack's data. All counts are approximate; they only feed threshold checks.
type Descriptor struct {
	Objects       int
	Facades       int
	Forests       int
	Polygons      int
	HasAirportRef bool     // airport property markers (apt.dat 1302 rows)
	Libraries     []string // names of libraries the pack references
}

// Healing thresholds. Urban landmark packs ship dozens of objects and
// facades; terrain-only orthos are polygon-heavy with almost no objects.
const (
	landmarkObjectThreshold = 40
	orthoPolygonThreshold   = 20
	orthoObjectCeiling      = 2
)

// Heal refines an ambiguous category using counted content signals. It is a
// promotion-only pass: a protected category is returned unchanged, and a new
// category is only adopted when it carries a strictly higher load priority
// (lower number) than the current one. Re-running Heal on its own output
// yields the same category.
func Heal(current Category, hasAirports, hasTiles bool, desc Descriptor) Category {
	// Protected categories are never demoted, whatever the descriptor says.
	if current.Protected() {
		return current
	}

	if desc.Objects+desc.Facades >= landmarkObjectThreshold && hasTiles {
		return promote(current, Landmark)
	}
	if desc.Polygons >= orthoPolygonThreshold && desc.Objects+desc.Facades <= orthoObjectCeiling {
		return promote(current, OrthoBase)
	}
	if desc.HasAirportRef || hasAirports {
		return promote(current, AirportOverlay)
	}
	return current
}

// promote returns next only if it outranks current; otherwise the category
// is left alone. Keeps healing monotonic.
func promote(current, next Category) Category {
	if next.Priority() < current.Priority() {
		return next
	}
	return current
}
