// Package heuristics assigns every scenery pack a numeric load priority via
// an ordered, user-editable rule list. Scores run 0–100; lower loads earlier.
// The rule list is a decision list: rules are evaluated in declared order and
// the first accepted match wins. Precedence is the list order, nothing else.
package heuristics

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Rule is one entry of the decision list. Keywords are lowercase substrings
// matched against the lowercased pack name. An exclusion rule still matches,
// but is suppressed when the pack independently looks like an airport, so
// "overlay"/"mesh" rules never demote genuine airport tweak packs.
type Rule struct {
	Name        string   `toml:"name"`
	Keywords    []string `toml:"keywords"`
	Score       uint8    `toml:"score"`
	IsExclusion bool     `toml:"is_exclusion"`
}

// Matches reports whether any keyword occurs in the lowercased name.
func (r Rule) Matches(lower string) bool {
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Config is the persisted heuristic rule set plus the per-pack pin map.
// Overrides are keyed by exact pack name and always win over rule evaluation.
type Config struct {
	Rules         []Rule           `toml:"rules"`
	FallbackScore uint8            `toml:"fallback_score"`
	Overrides     map[string]uint8 `toml:"overrides"`
}

// Context carries the shared discovery facts the model may consult.
type Context struct {
	HasAirports bool   // pack ships apt.dat airports
	HasTiles    bool   // pack covers degree-grid tiles
	RegionFocus string // optional region name to nudge one notch earlier
}

// Model evaluates the rule cascade. It holds no hidden state: Predict is
// deterministic and side-effect-free apart from debug logging, so a shared
// instance only needs external serialization when Pin/Unpin run concurrently.
type Model struct {
	cfg Config
}

// NewModel wraps a config in a model. A nil Overrides map is allocated so
// Pin never has to check.
func NewModel(cfg Config) *Model {
	if cfg.Overrides == nil {
		cfg.Overrides = make(map[string]uint8)
	}
	return &Model{cfg: cfg}
}

// Config returns the model's current config value, for persistence.
func (m *Model) Config() Config { return m.cfg }

// Pin records a manual score for the named pack. Pins bypass all rule logic.
func (m *Model) Pin(name string, score uint8) {
	m.cfg.Overrides[name] = score
}

// Unpin removes a manual score. Removing an absent pin is a no-op.
func (m *Model) Unpin(name string) {
	delete(m.cfg.Overrides, name)
}

// Pinned returns the pinned score for name, if any.
func (m *Model) Pinned(name string) (uint8, bool) {
	s, ok := m.cfg.Overrides[name]
	return s, ok
}

// Predict returns the load-priority score for a pack (0 loads first).
//
// Order of resolution: pin override, then the rule cascade (first accepted
// match wins, exclusions suppressed for airports), then the airport/terrain
// fallbacks, then the region-focus bias.
func (m *Model) Predict(name, path string, ctx Context) uint8 {
	if score, ok := m.cfg.Overrides[name]; ok {
		log.Debug("score pinned", "pack", name, "score", score)
		return score
	}

	lower := strings.ToLower(name)
	airport := IsAirportName(name)

	score, matched := m.evalRules(lower, airport)
	if !matched {
		score = m.fallback(lower, airport)
	}

	// Region bias: one notch earlier for focus-region packs, saturating at 0
	// so focus never reorders across tiers.
	if ctx.RegionFocus != "" && strings.Contains(lower, strings.ToLower(ctx.RegionFocus)) && score > 0 {
		score--
	}

	log.Debug("score predicted", "pack", name, "score", score, "airport", airport)
	return score
}

// evalRules walks the decision list and returns the first accepted score.
func (m *Model) evalRules(lower string, airport bool) (uint8, bool) {
	for _, r := range m.cfg.Rules {
		if !r.Matches(lower) {
			continue
		}
		if r.IsExclusion && airport {
			continue
		}
		return r.Score, true
	}
	return 0, false
}

// fallback scores packs no rule accepted: bare airports load near the top,
// z/y-prefixed terrain conventions sink toward the bottom, everything else
// takes the configured default.
func (m *Model) fallback(lower string, airport bool) uint8 {
	if airport && !strings.Contains(lower, "overlay") {
		return 10
	}
	if strings.HasPrefix(lower, "z") || strings.HasPrefix(lower, "y") {
		return 50
	}
	return m.cfg.FallbackScore
}

// airportNameFragments are substrings that mark a pack as airport content,
// including the naming habits of the major payware airport developers.
var airportNameFragments = []string{
	"airport", "airfield", "aerodrome", "airstrip", "heliport",
	"international", " intl",
	"flytampa", "justsim", "taimodels", "windsock", "nimbus",
}

// IsAirportName reports whether the pack name looks like airport content:
// either a known airport-indicative fragment, or an ICAO-code heuristic (a
// four-letter all-alphabetic token that is fully uppercase or starts the name).
func IsAirportName(name string) bool {
	lower := strings.ToLower(name)
	for _, frag := range airportNameFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}

	offset := 0
	for _, tok := range tokenize(name) {
		idx := strings.Index(name[offset:], tok) + offset
		offset = idx + len(tok)
		if len(tok) != 4 {
			continue
		}
		if tok == strings.ToUpper(tok) || idx == 0 {
			return true
		}
	}
	return false
}

// tokenize splits a name into alphabetic runs.
func tokenize(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'))
	})
}
