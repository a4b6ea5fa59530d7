package scenery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassify_Names(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pack string
		want Category
	}{
		{"stock global airports", "Global Airports", GlobalAirport},
		{"decorated global airports", "*GLOBAL_AIRPORTS*", GlobalAirport},
		{"ortho prefix", "zOrtho4XP_+47-123", Ortho},
		{"ortho generator prefix", "Ortho4XP_Overlays", Ortho},
		{"uhd mesh", "zzz_UHD_Mesh_v4", Mesh},
		{"hd mesh", "HD Mesh Scenery v4", Mesh},
		{"library keyword", "MisterX_Library", Library},
		{"opensceneryx", "OpenSceneryX", Library},
		{"simheaven overlay", "simHeaven_X-World_Europe-1-vfr", Overlay},
		{"landmark keyword", "X-Plane Landmarks - Chicago", Overlay},
		{"airport keyword", "Oshkosh Airfield", EarthAirports},
		{"bare icao token", "KSEA Demo Area", EarthAirports},
		{"companion mesh via icao", "EGLC Terrain Patch", SpecificMesh},
		{"orbx layer b mesh", "Orbx_B_EGLC_LondonCity_Mesh", SpecificMesh},
		{"orbx trueearth", "Orbx_A_GB_South_TrueEarth_Orthos", Ortho},
		{"orbx default overlay", "Orbx_C_GB_South_Detail", Overlay},
		{"unrecognized", "My Holiday Snaps", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify("", tt.pack); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.pack, got, tt.want)
			}
		})
	}
}

func TestClassify_FileSignalsOutrankNames(t *testing.T) {
	t.Parallel()

	// A folder whose name screams "mesh" but that ships a library manifest
	// must classify as Library: structure beats naming.
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "library.txt"), []byte("EXPORT foo foo.obj\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Classify(dir, "Some Mesh Assets"); got != Library {
		t.Errorf("Classify with library.txt = %v, want Library", got)
	}
}

func TestClassify_AirportManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	nav := filepath.Join(dir, "Earth nav data")
	if err := os.MkdirAll(nav, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nav, "earth_wed.xml"), []byte("<wed/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Classify(dir, "Anything At All"); got != EarthAirports {
		t.Errorf("Classify with earth_wed.xml = %v, want EarthAirports", got)
	}
}

func TestClassify_LibraryBeatsAirportManifest(t *testing.T) {
	t.Parallel()

	// library.txt presence is checked behind the airport-layout manifest but
	// ahead of every naming signal, so a library that also ships airport
	// furniture by name is never reclassified.
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "library.txt"), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Classify(dir, "KSEA Airport Assets"); got != Library {
		t.Errorf("Classify(library with airport name) = %v, want Library", got)
	}
}

func TestClassify_Total(t *testing.T) {
	t.Parallel()

	// Never panics, never errors: junk input falls back to Unknown.
	for _, name := range []string{"", " ", "***", "12345", "\t"} {
		if got := Classify("/does/not/exist", name); got != Unknown {
			t.Errorf("Classify(%q) = %v, want Unknown", name, got)
		}
	}
}

func TestCategory_Priority(t *testing.T) {
	t.Parallel()

	// The fallback priority order from airports down to unknown.
	ordered := []Category{
		EarthAirports, CustomAirport, AirportOverlay, GlobalAirport,
		Library, Landmark, Overlay, EarthScenery, SpecificMesh, Ortho,
		Mesh, GlobalBase, Unknown,
	}
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if prev.Priority() > cur.Priority() {
			t.Errorf("%v.Priority() = %d > %v.Priority() = %d", prev, prev.Priority(), cur, cur.Priority())
		}
	}
}

func TestCategory_Protected(t *testing.T) {
	t.Parallel()

	for _, c := range []Category{GlobalAirport, Library, GlobalBase, Landmark} {
		if !c.Protected() {
			t.Errorf("%v.Protected() = false, want true", c)
		}
	}
	for _, c := range []Category{Unknown, Mesh, Overlay, EarthAirports, Ortho} {
		if c.Protected() {
			t.Errorf("%v.Protected() = true, want false", c)
		}
	}
}
