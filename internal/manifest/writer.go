package manifest

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// header is written verbatim at the top of every manifest. The simulator
// requires it before any SCENERY_PACK line.
const header = "I\n1000 Version\nSCENERY\n\n"

// Band labels one score range for the cosmetic section headers written
// between groups of entries. Bands are presentation data: they group the
// file for human readers and have no effect on the parsed order.
type Band struct {
	Label string
	Max   uint8 // entries with score <= Max fall in this band
}

// DefaultBands mirror the shipped rule tiers. The boundaries are cosmetic
// groupings, not part of the scoring contract.
var DefaultBands = []Band{
	{Label: "Payware and custom airports", Max: 14},
	{Label: "World overlays", Max: 19},
	{Label: "Global airports", Max: 24},
	{Label: "Landmarks and libraries", Max: 39},
	{Label: "Overlays", Max: 49},
	{Label: "Orthos and meshes", Max: 255},
}

// ScoredEntry pairs a manifest entry with its heuristic score, for banded
// write-back.
type ScoredEntry struct {
	Entry
	Score uint8
}

// Format renders manifest text for the given entries in order, preserving
// each entry's literal path. With a non-empty bands slice, a comment header
// is emitted whenever the score crosses into the next band.
func Format(entries []ScoredEntry, bands []Band) string {
	var b strings.Builder
	b.WriteString(header)

	band := -1
	for _, e := range entries {
		if len(bands) > 0 {
			next := bandFor(bands, e.Score)
			if next != band {
				band = next
				fmt.Fprintf(&b, "# --- %s ---\n", bands[band].Label)
			}
		}
		if e.Disabled {
			b.WriteString(prefixDisabled)
		} else {
			b.WriteString(prefixActive)
		}
		b.WriteString(e.Path)
		b.WriteByte('\n')
	}
	return b.String()
}

// bandFor returns the index of the first band whose Max covers score. The
// last band is the fallback.
func bandFor(bands []Band, score uint8) int {
	for i, band := range bands {
		if score <= band.Max {
			return i
		}
	}
	return len(bands) - 1
}

// Write persists the formatted manifest to path. With backup set, any
// existing file is first copied aside with a timestamp suffix.
func Write(path string, entries []ScoredEntry, bands []Band, backup bool) error {
	if backup {
		if data, err := os.ReadFile(path); err == nil {
			bak := fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
			if err := os.WriteFile(bak, data, 0o644); err != nil {
				return fmt.Errorf("manifest: write backup %s: %w", bak, err)
			}
		}
	}

	if err := os.WriteFile(path, []byte(Format(entries, bands)), 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
