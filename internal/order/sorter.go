// Package order produces the final total order over scenery packs. The
// primary key is the heuristic score; category priority and a normalized
// name key (regional grouping plus numeric sequence ordinals) break the
// remaining ties, in that order.
package order

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/startuz/xoxide/internal/heuristics"
	"github.com/startuz/xoxide/internal/region"
	"github.com/startuz/xoxide/internal/scenery"
)

// Sorter sorts packs into load order. Model and Regions are optional: with
// no model the sort falls back to category priority, with no region table
// sequential families only use their numeric ordinals.
type Sorter struct {
	Model   *heuristics.Model
	Regions *region.Snapshot

	// Context supplies per-pack discovery facts to the score model. Nil
	// means a zero Context for every pack.
	Context func(scenery.Pack) heuristics.Context
}

// Sort orders packs in place. The sort is stable: packs with fully equal
// keys keep their input order.
func (s *Sorter) Sort(packs []scenery.Pack) {
	type entry struct {
		pack  scenery.Pack
		score uint8
		key   string
	}

	entries := make([]entry, len(packs))
	for i, p := range packs {
		e := entry{pack: p, key: sortKey(p.Name, parseSequence(p.Name, s.Regions))}
		if s.Model != nil {
			ctx := heuristics.Context{}
			if s.Context != nil {
				ctx = s.Context(p)
			}
			e.score = s.Model.Predict(p.Name, p.Path, ctx)
		}
		entries[i] = e
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		// 1. Heuristic score. Pins resolve here, so a pinned pack lands in
		// its score tier regardless of where its name would sort.
		if s.Model != nil && a.score != b.score {
			return a.score < b.score
		}

		// 2. Category fallback priority.
		if ap, bp := a.pack.Category.Priority(), b.pack.Category.Priority(); ap != bp {
			return ap < bp
		}

		// 3. Normalized name key. Sequential families encode family, region,
		// and ordinal in the key, so one string compare keeps the whole
		// order strictly total.
		return a.key < b.key
	})

	for i, e := range entries {
		packs[i] = e.pack
	}
}

// sortKey is the name-level comparison key. Sequence members encode their
// family prefix, region group, zero-padded ordinal, and label, so numeric
// suffixes compare by value ("-2-" before "-10-") and mixing sequence with
// non-sequence packs cannot produce a comparison cycle.
func sortKey(name string, k seqKey) string {
	if !k.ok {
		return name
	}
	return fmt.Sprintf("%s\x00%s\x00%09.1f\x00%s", k.family, k.region, k.ordinal, k.label)
}

// seqKey identifies a pack's place in a sequential layer family like
// "simHeaven_X-World_Europe-3-scenery": a shared family prefix, an optional
// region name, and an integer ordinal.
type seqKey struct {
	family  string
	region  string
	ordinal float64
	label   string
	ok      bool
}

// seqRe matches "<prefix>-<n>-<label>", the sequential layer naming scheme.
var seqRe = regexp.MustCompile(`^(.*?)-(\d+)-(.*)$`)

// parseSequence extracts the sequence key from a pack name. Vegetation and
// library sub-packs of a family sort half a step after their ordinal so they
// land between their numeric neighbors.
func parseSequence(name string, regions *region.Snapshot) seqKey {
	m := seqRe.FindStringSubmatch(name)
	if m == nil {
		return seqKey{}
	}

	prefix, digits, label := m[1], m[2], m[3]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return seqKey{}
	}

	key := seqKey{family: prefix, ordinal: float64(n), label: label, ok: true}

	lowerLabel := strings.ToLower(label)
	if strings.Contains(lowerLabel, "vegetation") || strings.Contains(lowerLabel, "library") {
		key.ordinal += 0.5
	}

	if regions != nil {
		if r := regions.FromName(prefix); r != "" {
			key.region = r
			// Strip the region so families group across regions.
			idx := strings.Index(strings.ToLower(prefix), strings.ToLower(r))
			key.family = prefix[:idx] + prefix[idx+len(r):]
		}
	}
	return key
}
