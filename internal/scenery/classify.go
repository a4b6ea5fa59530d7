package scenery

import (
	"os"
	"path/filepath"
	"strings"
)

// systemPackNames are the stock packs shipped with the simulator, matched
// after trimming decoration (asterisks, spaces) and lowercasing.
var systemPackNames = map[string]bool{
	"global airports":  true,
	"global_airports":  true,
	"x-plane airports": true,
}

// Keyword tables for the naming cascade. Order inside each table does not
// matter; the cascade order between tables does.
var (
	orthoPrefixes    = []string{"zortho", "ortho4xp", "zphotoxp", "zvfr_ortho"}
	meshKeywords     = []string{"uhd mesh", "hd mesh", "uhd_mesh", "hd_mesh", "mesh"}
	libraryKeywords  = []string{"library", "opensceneryx", "_lib", "autogen"}
	overlayKeywords  = []string{"overlay", "simheaven", "x-world", "landmark", "osm"}
	airportKeywords  = []string{"airport", "airfield", "aerodrome", "airstrip", "heliport"}
	companionMeshKws = []string{"mesh", "terrain", "grass"}
)

// Classify maps a pack's on-disk location and declared name to a coarse
// category. It is a pure, total function: unrecognized input yields Unknown,
// never an error.
//
// File-presence signals outrank naming heuristics, and the library.txt check
// runs before any airport promotion a caller might perform: a library that
// also ships airport furniture must stay a Library.
func Classify(path, name string) Category {
	trimmed := strings.ToLower(strings.Trim(name, "* "))

	// 1. Stock system packs by exact (decorated) name.
	if systemPackNames[trimmed] {
		return GlobalAirport
	}

	// 2. Airport layout manifest on disk.
	if hasAnyFile(path,
		filepath.Join("Earth nav data", "earth_wed.xml"),
		filepath.Join("Earth nav data", "earth.wed.xml"),
		"earth_wed.xml",
		"earth.wed.xml",
	) {
		return EarthAirports
	}

	// 3. Library manifest on disk. Must precede every airport signal.
	if hasAnyFile(path, "library.txt") {
		return Library
	}

	lower := strings.ToLower(name)

	// 4. Naming cascade, highest-confidence prefixes first. The companion
	// check runs ahead of both the mesh and ICAO rules: an airport-scoped
	// terrain patch is neither a standalone mesh nor an airport pack.
	for _, p := range orthoPrefixes {
		if strings.HasPrefix(lower, p) {
			return Ortho
		}
	}
	if isCompanionMesh(name, lower) {
		return SpecificMesh
	}
	if strings.HasPrefix(lower, "zzz") || containsAny(lower, meshKeywords) {
		return Mesh
	}
	if containsAny(lower, libraryKeywords) {
		return Library
	}
	if containsAny(lower, overlayKeywords) {
		return Overlay
	}
	if containsAny(lower, airportKeywords) || hasUpperICAOToken(name) {
		return EarthAirports
	}

	// 5. Vendor cascade for Orbx-style names.
	if strings.Contains(lower, "orbx") {
		return classifyOrbx(name, lower)
	}

	return Unknown
}

// classifyOrbx resolves the Orbx naming scheme: TrueEarth tiles are orthos,
// _B_ packs are companion meshes, airports carry ICAO codes, everything else
// is overlay detail.
func classifyOrbx(name, lower string) Category {
	switch {
	case strings.Contains(lower, "trueearth") || strings.Contains(lower, "_te_"):
		return Ortho
	case isCompanionMesh(name, lower):
		return SpecificMesh
	case containsAny(lower, companionMeshKws):
		return Mesh
	case containsAny(lower, airportKeywords) || hasUpperICAOToken(name):
		return EarthAirports
	default:
		return Overlay
	}
}

// isCompanionMesh reports whether the name pairs an ICAO-like airport code
// with a terrain keyword (or follows the Orbx `_B_<ICAO>_..._Mesh` scheme).
// Such packs are airport-scoped terrain patches, not standalone meshes.
func isCompanionMesh(name, lower string) bool {
	if !containsAny(lower, companionMeshKws) {
		return false
	}
	if hasUpperICAOToken(name) {
		return true
	}
	// Orbx layer-B scheme: Orbx_B_EGLC_LondonCity_Mesh.
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "B" && i+1 < len(parts) && isICAOToken(parts[i+1]) {
			return true
		}
	}
	return false
}

// hasUpperICAOToken reports whether the name contains a bare four-letter
// all-uppercase alphabetic token, the usual way airport packs carry their
// ICAO code.
func hasUpperICAOToken(name string) bool {
	for _, tok := range splitTokens(name) {
		if isICAOToken(tok) && tok == strings.ToUpper(tok) {
			return true
		}
	}
	return false
}

// isICAOToken reports whether tok is exactly four alphabetic characters.
func isICAOToken(tok string) bool {
	if len(tok) != 4 {
		return false
	}
	for _, r := range tok {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

// splitTokens breaks a pack name into alphabetic runs.
func splitTokens(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'))
	})
}

func containsAny(lower string, kws []string) bool {
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// hasAnyFile reports whether any of the relative paths exists under root.
// Missing roots simply report false; classification stays total.
func hasAnyFile(root string, rels ...string) bool {
	if root == "" {
		return false
	}
	for _, rel := range rels {
		if _, err := os.Stat(filepath.Join(root, rel)); err == nil {
			return true
		}
	}
	return false
}
