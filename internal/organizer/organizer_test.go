package organizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/startuz/xoxide/internal/config"
	"github.com/startuz/xoxide/internal/heuristics"
	"github.com/startuz/xoxide/internal/manifest"
	"github.com/startuz/xoxide/internal/scenery"
)

// newFixture builds a throwaway installation: a Custom Scenery directory
// with the given pack folders and an optional manifest.
func newFixture(t *testing.T, folders []string, manifestText string) config.Config {
	t.Helper()

	root := t.TempDir()
	cs := filepath.Join(root, "Custom Scenery")
	if err := os.MkdirAll(cs, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range folders {
		if err := os.MkdirAll(filepath.Join(cs, f), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if manifestText != "" {
		if err := os.WriteFile(filepath.Join(cs, manifest.FileName), []byte(manifestText), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return config.Config{
		XPlaneRoot: root,
		Profile:    "default",
		CachePath:  filepath.Join(root, "descriptors.db"),
	}
}

func TestScan_ManifestAndDisk(t *testing.T) {
	t.Parallel()

	cfg := newFixture(t,
		[]string{
			"Custom Airport KSEA",
			"simHeaven_X-World_Europe-1-forests",
			"MisterX_Library",
			"zzz_UHD_Mesh",
		},
		"I\n1000 Version\nSCENERY\n\n"+
			"SCENERY_PACK *GLOBAL_AIRPORTS*\n"+
			"SCENERY_PACK Custom Scenery/zzz_UHD_Mesh/\n"+
			"SCENERY_PACK_DISABLED Custom Scenery/Old Pack/\n"+
			"SCENERY_PACK Custom Scenery/zzz_UHD_Mesh/\n")

	ctx := context.Background()
	o, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer o.Close()

	packs, err := o.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	// Manifest entries in file order, then unlisted disk folders by name.
	wantNames := []string{
		"*GLOBAL_AIRPORTS*",
		"zzz_UHD_Mesh",
		"Old Pack",
		"zzz_UHD_Mesh",
		"Custom Airport KSEA",
		"MisterX_Library",
		"simHeaven_X-World_Europe-1-forests",
	}
	if len(packs) != len(wantNames) {
		t.Fatalf("got %d packs, want %d: %+v", len(packs), len(wantNames), packs)
	}
	for i, w := range wantNames {
		if packs[i].Name != w {
			t.Errorf("packs[%d].Name = %q, want %q", i, packs[i].Name, w)
		}
	}

	if packs[0].Category != scenery.GlobalAirport {
		t.Errorf("*GLOBAL_AIRPORTS* classified %v", packs[0].Category)
	}
	if packs[2].Status != scenery.Disabled {
		t.Errorf("Old Pack status = %v, want Disabled", packs[2].Status)
	}
	if packs[3].Status != scenery.DuplicateHidden {
		t.Errorf("second zzz_UHD_Mesh status = %v, want DuplicateHidden", packs[3].Status)
	}
	if packs[4].Category != scenery.EarthAirports {
		t.Errorf("Custom Airport KSEA classified %v", packs[4].Category)
	}
}

func TestOrderAndLint(t *testing.T) {
	t.Parallel()

	cfg := newFixture(t,
		[]string{
			"Custom Airport KSEA",
			"simHeaven_X-World_Europe-1-forests",
			"MisterX_Library",
			"zzz_UHD_Mesh",
		},
		"I\n1000 Version\nSCENERY\n\nSCENERY_PACK *GLOBAL_AIRPORTS*\n")

	ctx := context.Background()
	o, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer o.Close()

	packs, err := o.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	o.Order(packs)

	want := []string{
		"Custom Airport KSEA",
		"simHeaven_X-World_Europe-1-forests",
		"*GLOBAL_AIRPORTS*",
		"MisterX_Library",
		"zzz_UHD_Mesh",
	}
	for i, w := range want {
		if packs[i].Name != w {
			t.Fatalf("order[%d] = %q, want %q (full: %v)", i, packs[i].Name, w, names(packs))
		}
	}

	if r := o.Lint(packs); len(r.Issues) != 0 {
		t.Errorf("clean order produced issues: %+v", r.Issues)
	}
}

func TestLint_FlagsBadOrder(t *testing.T) {
	t.Parallel()

	cfg := newFixture(t, nil, "")
	ctx := context.Background()
	o, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer o.Close()

	bad := []scenery.Pack{
		{Name: "Global Airports", Category: scenery.GlobalAirport},
		{Name: "simHeaven_X-World_Europe-1-forests", Category: scenery.Overlay},
	}
	r := o.Lint(bad)
	if len(r.Issues) != 1 {
		t.Fatalf("issues = %+v, want exactly one", r.Issues)
	}
}

func TestWriteOrder_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := newFixture(t,
		[]string{"Custom Airport KSEA"},
		"I\n1000 Version\nSCENERY\n\n"+
			"SCENERY_PACK *GLOBAL_AIRPORTS*\n"+
			"SCENERY_PACK_DISABLED Custom Scenery/Old Pack /\n")

	ctx := context.Background()
	o, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer o.Close()

	packs, err := o.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	o.Order(packs)

	if err := o.WriteOrder(packs, false); err != nil {
		t.Fatalf("WriteOrder: %v", err)
	}

	entries, err := manifest.Load(cfg.ManifestPath())
	if err != nil {
		t.Fatalf("Load after write: %v", err)
	}
	if len(entries) != len(packs) {
		t.Fatalf("round-trip lost entries: %+v", entries)
	}

	byName := make(map[string]manifest.Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}
	if e := byName["*GLOBAL_AIRPORTS*"]; e.Path != "*GLOBAL_AIRPORTS*" {
		t.Errorf("system pack path rewritten: %q", e.Path)
	}
	// The trailing space in the folder name survives write-back.
	if e, ok := byName["Old Pack "]; !ok || e.Path != "Custom Scenery/Old Pack /" || !e.Disabled {
		t.Errorf("hand-named entry did not round-trip: %+v", e)
	}
	if e := byName["Custom Airport KSEA"]; e.Path != "Custom Scenery/Custom Airport KSEA/" {
		t.Errorf("disk-discovered pack path = %q", e.Path)
	}
}

func TestPeek_UsesCache(t *testing.T) {
	t.Parallel()

	cfg := newFixture(t, []string{"Plain Pack"}, "")
	ctx := context.Background()
	o, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer o.Close()
	if o.Cache == nil {
		t.Fatal("cache did not open")
	}

	path := filepath.Join(cfg.CustomSceneryDir(), "Plain Pack")
	if err := os.WriteFile(filepath.Join(path, "a.obj"), []byte("OBJ"), 0o644); err != nil {
		t.Fatal(err)
	}

	first := o.peek(ctx, path)
	if first.Objects != 1 {
		t.Fatalf("peek Objects = %d, want 1", first.Objects)
	}

	// Cached: the descriptor comes back without re-walking, keyed by mtime.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	desc, ok, err := o.Cache.Get(ctx, path, info.ModTime().Unix())
	if err != nil {
		t.Fatalf("cache Get: %v", err)
	}
	if !ok || desc.Objects != 1 {
		t.Errorf("cache entry = %+v, ok=%v", desc, ok)
	}
}

func TestContext_RecordsDiscoveryFacts(t *testing.T) {
	t.Parallel()

	cfg := newFixture(t, []string{"Some Pack"}, "")
	cfg.RegionFocus = "Europe"

	ctx := context.Background()
	o, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer o.Close()

	packs, err := o.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	got := o.Context(packs[0])
	if got.RegionFocus != "Europe" {
		t.Errorf("RegionFocus = %q", got.RegionFocus)
	}

	// Unknown packs still carry the focus.
	got = o.Context(scenery.Pack{Name: "never scanned"})
	if got != (heuristics.Context{RegionFocus: "Europe"}) {
		t.Errorf("unknown pack context = %+v", got)
	}
}

func names(packs []scenery.Pack) []string {
	out := make([]string, len(packs))
	for i, p := range packs {
		out[i] = p.Name
	}
	return out
}
