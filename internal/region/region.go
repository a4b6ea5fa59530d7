// Package region provides a read-only lookup of region (continent) names
// used for grouping sequential scenery families and for the region-focus
// score bias. The snapshot is built once by the composition root and handed
// out by reference; nothing mutates it afterwards.
package region

import "strings"

// Snapshot is an immutable region index. The zero value is unusable; build
// one with Default or New.
type Snapshot struct {
	names []string
	index map[string]bool
}

// Default returns the shipped region table: the continent names used by
// world-overlay vendors to split their sequential pack families.
func Default() *Snapshot {
	return New([]string{
		"Africa",
		"America",
		"Antarctica",
		"Asia",
		"Europe",
		"Oceania",
	})
}

// New builds a snapshot from explicit region names.
func New(names []string) *Snapshot {
	s := &Snapshot{
		names: make([]string, len(names)),
		index: make(map[string]bool, len(names)),
	}
	copy(s.names, names)
	for _, n := range names {
		s.index[strings.ToLower(n)] = true
	}
	return s
}

// Names returns the region names in table order. Callers must not mutate
// the returned slice.
func (s *Snapshot) Names() []string { return s.names }

// Known reports whether name is a region, case-insensitively.
func (s *Snapshot) Known(name string) bool {
	return s.index[strings.ToLower(name)]
}

// FromName extracts the first region name that occurs in a pack name, or ""
// when none does.
func (s *Snapshot) FromName(packName string) string {
	lower := strings.ToLower(packName)
	for _, n := range s.names {
		if strings.Contains(lower, strings.ToLower(n)) {
			return n
		}
	}
	return ""
}
