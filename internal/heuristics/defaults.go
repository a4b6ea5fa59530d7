package heuristics

// DefaultFallbackScore is used when no rule accepts a pack and the airport
// and terrain-prefix fallbacks do not apply.
const DefaultFallbackScore = 45

// DefaultRules is the shipped decision list. Order is precedence: the
// "global airports" rule must stay ahead of the generic airport rule or the
// stock pack would score as a custom airport. The trailing exclusion rules
// push overlay/ortho/mesh tweak packs down without demoting real airport
// packs that happen to carry those words.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "Global airports", Keywords: []string{"global airport", "global_airport"}, Score: 20},
		{Name: "Custom airports", Keywords: []string{"airport", "airfield", "aerodrome", "airstrip"}, Score: 10},
		{Name: "World overlays", Keywords: []string{"simheaven", "x-world"}, Score: 15},
		{Name: "Landmarks", Keywords: []string{"landmark"}, Score: 25},
		{Name: "Libraries", Keywords: []string{"library", "opensceneryx", "_lib"}, Score: 30},
		{Name: "Overlays", Keywords: []string{"overlay", "osm"}, Score: 40, IsExclusion: true},
		{Name: "Orthophotos", Keywords: []string{"ortho", "zphotoxp", "trueearth"}, Score: 55, IsExclusion: true},
		{Name: "Terrain meshes", Keywords: []string{"mesh", "uhd"}, Score: 60, IsExclusion: true},
	}
}

// DefaultConfig returns the shipped rule set with an empty override map.
func DefaultConfig() Config {
	return Config{
		Rules:         DefaultRules(),
		FallbackScore: DefaultFallbackScore,
		Overrides:     make(map[string]uint8),
	}
}
