// Package organizer is the composition root tying discovery, classification,
// healing, scoring, sorting, and linting together. It owns the lifecycle of
// the per-profile heuristics config, the region snapshot, and the descriptor
// cache; the core packages stay pure.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/startuz/xoxide/internal/cache"
	"github.com/startuz/xoxide/internal/config"
	"github.com/startuz/xoxide/internal/heuristics"
	"github.com/startuz/xoxide/internal/lint"
	"github.com/startuz/xoxide/internal/manifest"
	"github.com/startuz/xoxide/internal/order"
	"github.com/startuz/xoxide/internal/region"
	"github.com/startuz/xoxide/internal/scenery"
)

// Organizer wires the core engine to one X-Plane installation and profile.
type Organizer struct {
	Cfg     config.Config
	Model   *heuristics.Model
	Regions *region.Snapshot
	Cache   *cache.Store

	// rawPaths maps pack name to the literal manifest path text, so write-back
	// round-trips byte-for-byte. Packs discovered on disk get a synthesized
	// relative path.
	rawPaths map[string]string
	// contexts holds per-pack discovery facts for the score model.
	contexts map[string]heuristics.Context
}

// New builds an organizer for the configured installation: it loads the
// profile's heuristics (shipped defaults when absent) and opens the
// descriptor cache. A cache open failure is downgraded to a warning; the
// organizer works without one, just slower.
func New(ctx context.Context, cfg config.Config) (*Organizer, error) {
	heurPath := heuristics.ConfigPath(cfg.XPlaneRoot, cfg.Profile)
	heurCfg, err := heuristics.LoadOrDefault(heurPath)
	if err != nil {
		log.Warn("heuristics config unreadable, using defaults", "path", heurPath, "err", err)
		heurCfg = heuristics.DefaultConfig()
	}

	o := &Organizer{
		Cfg:      cfg,
		Model:    heuristics.NewModel(heurCfg),
		Regions:  region.Default(),
		rawPaths: make(map[string]string),
		contexts: make(map[string]heuristics.Context),
	}

	store, err := cache.Open(ctx, cfg.ResolvedCachePath())
	if err != nil {
		log.Warn("descriptor cache unavailable", "err", err)
	} else {
		o.Cache = store
	}
	return o, nil
}

// Close releases the descriptor cache.
func (o *Organizer) Close() {
	if o.Cache != nil {
		o.Cache.Close()
	}
}

// Scan discovers every pack of the installation: manifest entries first (in
// file order, duplicates by name flagged), then pack folders on disk that the
// manifest does not mention yet. Each pack is classified, peeked, and healed.
func (o *Organizer) Scan(ctx context.Context) ([]scenery.Pack, error) {
	entries, err := manifest.Load(o.Cfg.ManifestPath())
	if err != nil && !errors.Is(err, manifest.ErrNoManifest) {
		return nil, err
	}

	var packs []scenery.Pack
	seen := make(map[string]bool)

	for _, e := range entries {
		status := scenery.Active
		if e.Disabled {
			status = scenery.Disabled
		}
		if seen[e.Name] {
			status = scenery.DuplicateHidden
		}
		seen[e.Name] = true
		o.rawPaths[e.Name] = e.Path
		packs = append(packs, o.discover(ctx, e.Name, o.resolve(e.Path), status))
	}

	// Folders present on disk but missing from the manifest.
	if dirs, err := os.ReadDir(o.Cfg.CustomSceneryDir()); err == nil {
		var names []string
		for _, d := range dirs {
			if d.IsDir() && !seen[d.Name()] {
				names = append(names, d.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			o.rawPaths[name] = "Custom Scenery/" + name + "/"
			packs = append(packs, o.discover(ctx, name, filepath.Join(o.Cfg.CustomSceneryDir(), name), scenery.Active))
		}
	}

	if o.Cache != nil {
		keep := make(map[string]bool, len(packs))
		for _, p := range packs {
			keep[p.Path] = true
		}
		if err := o.Cache.Prune(ctx, keep); err != nil {
			log.Warn("cache prune failed", "err", err)
		}
	}

	log.Debug("scan complete", "packs", len(packs))
	return packs, nil
}

// discover builds one Pack: classify from name and structure, peek content
// signals (through the cache when possible), heal, and record the score
// context.
func (o *Organizer) discover(ctx context.Context, name, path string, status scenery.Status) scenery.Pack {
	p := scenery.Pack{
		Name:   name,
		Path:   path,
		Status: status,
	}

	p.Category = scenery.Classify(path, name)
	p.Tiles = scenery.Tiles(path)
	p.Region = o.Regions.FromName(name)

	desc := o.peek(ctx, path)
	p.Category = scenery.Heal(p.Category, desc.HasAirportRef, len(p.Tiles) > 0, desc)

	o.contexts[name] = heuristics.Context{
		HasAirports: desc.HasAirportRef,
		HasTiles:    len(p.Tiles) > 0,
		RegionFocus: o.Cfg.RegionFocus,
	}

	log.Debug("discovered", "pack", name, "category", p.Category, "status", status)
	return p
}

// peek returns the content descriptor for path, consulting the cache first.
func (o *Organizer) peek(ctx context.Context, path string) scenery.Descriptor {
	info, err := os.Stat(path)
	if err != nil {
		return scenery.Descriptor{}
	}
	mtime := info.ModTime().Unix()

	if o.Cache != nil {
		if desc, ok, err := o.Cache.Get(ctx, path, mtime); err == nil && ok {
			return desc
		}
	}

	desc := scenery.Peek(path)
	if o.Cache != nil {
		if err := o.Cache.Put(ctx, path, mtime, desc); err != nil {
			log.Warn("cache put failed", "path", path, "err", err)
		}
	}
	return desc
}

// Context returns the recorded score context for a pack. Unknown packs get
// a context carrying only the region focus.
func (o *Organizer) Context(p scenery.Pack) heuristics.Context {
	if ctx, ok := o.contexts[p.Name]; ok {
		return ctx
	}
	return heuristics.Context{RegionFocus: o.Cfg.RegionFocus}
}

// Order sorts packs into load order in place.
func (o *Organizer) Order(packs []scenery.Pack) {
	s := order.Sorter{Model: o.Model, Regions: o.Regions, Context: o.Context}
	s.Sort(packs)
}

// Lint validates the ordered list.
func (o *Organizer) Lint(ordered []scenery.Pack) lint.Report {
	return lint.Validate(ordered)
}

// WriteOrder persists the given pack order back to scenery_packs.ini,
// grouped under score-band section headers. Literal manifest paths are
// reused so hand-named folders (trailing whitespace included) round-trip.
func (o *Organizer) WriteOrder(packs []scenery.Pack, backup bool) error {
	entries := make([]manifest.ScoredEntry, 0, len(packs))
	for _, p := range packs {
		raw, ok := o.rawPaths[p.Name]
		if !ok {
			raw = "Custom Scenery/" + p.Name + "/"
		}
		entries = append(entries, manifest.ScoredEntry{
			Entry: manifest.Entry{
				Path:     raw,
				Name:     p.Name,
				Disabled: p.Status == scenery.Disabled,
			},
			Score: o.Model.Predict(p.Name, p.Path, o.Context(p)),
		})
	}
	return manifest.Write(o.Cfg.ManifestPath(), entries, manifest.DefaultBands, backup)
}

// SaveHeuristics persists the model's current rule set and pins for the
// active profile.
func (o *Organizer) SaveHeuristics() error {
	path := heuristics.ConfigPath(o.Cfg.XPlaneRoot, o.Cfg.Profile)
	if err := heuristics.SaveConfig(path, o.Model.Config()); err != nil {
		return fmt.Errorf("organizer: save heuristics: %w", err)
	}
	return nil
}

// resolve turns a manifest path into an absolute one.
func (o *Organizer) resolve(raw string) string {
	trimmed := filepath.FromSlash(trimTrailingSep(raw))
	if filepath.IsAbs(trimmed) {
		return trimmed
	}
	return filepath.Join(o.Cfg.XPlaneRoot, trimmed)
}

func trimTrailingSep(p string) string {
	for len(p) > 0 && (p[len(p)-1] == '/' || p[len(p)-1] == '\\') {
		p = p[:len(p)-1]
	}
	return p
}
