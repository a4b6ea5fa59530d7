package scenery

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// peekMaxEntries bounds the directory walk so a 200 GB ortho pack cannot
// stall discovery. Counts beyond the bound only sharpen thresholds that have
// long since been crossed.
const peekMaxEntries = 4000

// Peek performs a best-effort content scan of a pack directory and returns
// counted signals for the healing pass. It never fails: unreadable packs
// yield a zero Descriptor.
func Peek(root string) Descriptor {
	var desc Descriptor
	if root == "" {
		return desc
	}

	seen := 0
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable subtrees
		}
		if seen >= peekMaxEntries {
			return fs.SkipAll
		}
		if d.IsDir() {
			return nil
		}
		seen++

		switch strings.ToLower(filepath.Ext(d.Name())) {
		case ".obj":
			desc.Objects++
		case ".fac":
			desc.Facades++
		case ".for":
			desc.Forests++
		case ".pol":
			desc.Polygons++
		}
		if strings.EqualFold(d.Name(), "apt.dat") {
			if aptHasProperties(path) {
				desc.HasAirportRef = true
			}
		}
		if strings.EqualFold(d.Name(), "library.txt") {
			desc.Libraries = append(desc.Libraries, filepath.Base(filepath.Dir(path)))
		}
		return nil
	})
	return desc
}

// aptHasProperties scans an apt.dat for 1302 metadata rows, the marker that
// the pack carries airport property overrides.
func aptHasProperties(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "1302 ") {
			return true
		}
	}
	return false
}

// Tiles lists the degree-grid cells a pack covers by parsing tile folder and
// DSF names under Earth nav data (e.g. +47-123). Unparseable names are
// skipped; discovery stays best-effort.
func Tiles(root string) []Tile {
	navDir := filepath.Join(root, "Earth nav data")
	entries, err := os.ReadDir(navDir)
	if err != nil {
		return nil
	}

	var tiles []Tile
	seen := make(map[Tile]bool)
	for _, e := range entries {
		names := []string{e.Name()}
		if e.IsDir() {
			if subs, err := os.ReadDir(filepath.Join(navDir, e.Name())); err == nil {
				for _, s := range subs {
					names = append(names, strings.TrimSuffix(s.Name(), ".dsf"))
				}
			}
		}
		for _, n := range names {
			t, ok := parseTile(n)
			if ok && !seen[t] {
				seen[t] = true
				tiles = append(tiles, t)
			}
		}
	}
	return tiles
}

// parseTile parses a signed degree-grid cell name like "+47-123".
func parseTile(name string) (Tile, bool) {
	if len(name) < 6 {
		return Tile{}, false
	}
	split := -1
	for i := 1; i < len(name); i++ {
		if name[i] == '+' || name[i] == '-' {
			split = i
			break
		}
	}
	if split < 0 {
		return Tile{}, false
	}
	lat, err := strconv.Atoi(name[:split])
	if err != nil {
		return Tile{}, false
	}
	lon, err := strconv.Atoi(name[split:])
	if err != nil {
		return Tile{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Tile{}, false
	}
	return Tile{Lat: lat, Lon: lon}, true
}
