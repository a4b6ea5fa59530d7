// Package lint re-scans a sorted pack list for known layering-invariant
// violations. Linting is a pure function over the ordered list: it never
// fails, it only reports. An empty report is a valid outcome.
package lint

import (
	"fmt"
	"strings"

	"github.com/startuz/xoxide/internal/scenery"
)

// Severity orders issue gravity.
type Severity int

const (
	Info Severity = iota
	Warning
	Critical
)

// String returns the display label for the severity.
func (s Severity) String() string {
	switch s {
	case Critical:
		return "critical"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// Issue type tags, stable for programmatic handling.
const (
	TypeSimHeavenBelowGlobal = "simheaven_below_global"
	TypeMeshAboveOverlay     = "mesh_above_overlay"
	TypeLibraryPlacement     = "library_placement"
)

// Issue is one detected layering problem. Message, FixSuggestion, and
// Details are all part of the contract: every emitted issue populates the
// three, since the UI shows the first two inline and the third as a tooltip.
type Issue struct {
	PackName      string
	Severity      Severity
	Type          string
	Message       string
	FixSuggestion string
	Details       string
}

// Report is the append-only outcome of one lint pass.
type Report struct {
	Issues []Issue
}

// Worst returns the highest severity present, or Info for an empty report.
func (r *Report) Worst() Severity {
	worst := Info
	for _, is := range r.Issues {
		if is.Severity > worst {
			worst = is.Severity
		}
	}
	return worst
}

// worldOverlayTags mark the vendor whose overlays must render above the
// flattening effect of global airport data.
var worldOverlayTags = []string{"simheaven", "x-world"}

// Validate runs every check over the ordered list and returns the combined
// report. Checks are independent; each only appends.
func Validate(ordered []scenery.Pack) Report {
	var r Report
	checkSimHeavenBelowGlobal(ordered, &r)
	checkMeshAboveOverlay(ordered, &r)
	checkLibraryPlacement(ordered, &r)
	return r
}

// checkSimHeavenBelowGlobal flags world-overlay packs that load after the
// global airports pack. Global airport data flattens terrain under every
// airport; an overlay loading later is buried under that flattening.
func checkSimHeavenBelowGlobal(ordered []scenery.Pack, r *Report) {
	global := -1
	for i, p := range ordered {
		if p.Category == scenery.GlobalAirport {
			global = i
			break
		}
	}
	if global < 0 {
		return
	}

	for i := global + 1; i < len(ordered); i++ {
		p := ordered[i]
		if !hasWorldOverlayTag(p.Name) {
			continue
		}
		r.Issues = append(r.Issues, Issue{
			PackName:      p.Name,
			Severity:      Critical,
			Type:          TypeSimHeavenBelowGlobal,
			Message:       fmt.Sprintf("%s loads after Global Airports", p.Name),
			FixSuggestion: "Move this world overlay above the Global Airports entry, or pin it to a lower score.",
			Details: "World overlay packs redraw terrain detail around airports. Global airport " +
				"data flattens the ground under every airport it covers, so an overlay that loads " +
				"later is rendered beneath that flattening and its content disappears around airports.",
		})
	}
}

// checkMeshAboveOverlay warns when the first mesh/ortho pack loads earlier
// than the last overlay or airport pack. Terrain must draw beneath airports
// and overlays; meshes belong at the bottom of the list.
func checkMeshAboveOverlay(ordered []scenery.Pack, r *Report) {
	firstMesh := -1
	lastOverlay := -1
	for i, p := range ordered {
		switch p.Category {
		case scenery.Mesh, scenery.Ortho, scenery.OrthoBase:
			if firstMesh < 0 {
				firstMesh = i
			}
		case scenery.Overlay, scenery.RegionalOverlay, scenery.EarthAirports, scenery.GlobalAirport:
			lastOverlay = i
		}
	}
	if firstMesh < 0 || lastOverlay < 0 || firstMesh > lastOverlay {
		return
	}

	p := ordered[firstMesh]
	r.Issues = append(r.Issues, Issue{
		PackName:      p.Name,
		Severity:      Warning,
		Type:          TypeMeshAboveOverlay,
		Message:       fmt.Sprintf("%s loads before overlay or airport packs", p.Name),
		FixSuggestion: "Move terrain meshes and orthos below all airports and overlays.",
		Details: "A mesh that loads above an overlay or airport shadows it: the renderer " +
			"replaces the tile's terrain after the overlay was placed, hiding buildings and " +
			"flattening runways. Meshes and orthos should close out the list.",
	})
}

// checkLibraryPlacement is a documented extension point for future library
// ordering rules. Libraries are position-independent for rendering today, so
// no rule fires; the hook stays so new rules land in one place.
func checkLibraryPlacement(ordered []scenery.Pack, r *Report) {
	_ = ordered
	_ = r
}

func hasWorldOverlayTag(name string) bool {
	lower := strings.ToLower(name)
	for _, tag := range worldOverlayTags {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return false
}
