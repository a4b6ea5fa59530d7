package order

import (
	"github.com/startuz/xoxide/internal/heuristics"
	"github.com/startuz/xoxide/internal/scenery"
)

// Move relocates the named packs so they sit immediately before the gap at
// index target in packs, preserving the selection's relative order. The
// target is interpreted against the list as it stands before removal; the
// insertion index is recomputed against the post-removal list, so "drop
// before item k" keeps meaning that even when selected items above k are
// pulled out.
//
// It returns the reordered list and the index where the moved block begins.
// Names not present in packs are ignored.
func Move(packs []scenery.Pack, names []string, target int) ([]scenery.Pack, int) {
	selected := make(map[string]bool, len(names))
	for _, n := range names {
		selected[n] = true
	}

	var kept, moved []scenery.Pack
	insert := target
	for i, p := range packs {
		if selected[p.Name] {
			moved = append(moved, p)
			if i < target {
				insert--
			}
			continue
		}
		kept = append(kept, p)
	}

	if insert < 0 {
		insert = 0
	}
	if insert > len(kept) {
		insert = len(kept)
	}

	result := make([]scenery.Pack, 0, len(packs))
	result = append(result, kept[:insert]...)
	result = append(result, moved...)
	result = append(result, kept[insert:]...)
	return result, insert
}

// AutoPin pins every pack of the moved block to the score of its new
// neighbor: the pack just above the block, or the one just below when the
// block landed at the top. Pinning through the model means the manual order
// survives the next heuristic sort. A block dropped into an empty list is
// left unpinned.
func AutoPin(m *heuristics.Model, packs []scenery.Pack, blockStart, blockLen int, ctx func(scenery.Pack) heuristics.Context) {
	if m == nil || blockLen == 0 {
		return
	}

	var neighbor *scenery.Pack
	switch {
	case blockStart > 0:
		neighbor = &packs[blockStart-1]
	case blockStart+blockLen < len(packs):
		neighbor = &packs[blockStart+blockLen]
	default:
		return
	}

	nctx := heuristics.Context{}
	if ctx != nil {
		nctx = ctx(*neighbor)
	}
	score := m.Predict(neighbor.Name, neighbor.Path, nctx)

	for i := blockStart; i < blockStart+blockLen; i++ {
		m.Pin(packs[i].Name, score)
	}
}
