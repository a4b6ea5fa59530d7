// Package manifest reads and writes the simulator's scenery_packs.ini load
// order file. The format is line-oriented and whitespace-sensitive: folder
// names may legitimately end in spaces, so entry paths round-trip
// byte-for-byte between read and write. Parsing is best-effort: malformed
// lines in a hand-edited file are skipped, never fatal.
package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileName is the manifest file name inside the Custom Scenery directory.
const FileName = "scenery_packs.ini"

// Manifest line prefixes.
const (
	prefixActive   = "SCENERY_PACK "
	prefixDisabled = "SCENERY_PACK_DISABLED "
)

// ErrNoManifest indicates the manifest file does not exist yet.
var ErrNoManifest = errors.New("scenery_packs.ini not found")

// Entry is one load-order line. Path is the literal path text between the
// prefix and the end of the line, preserved exactly; Name is the final path
// component with the trailing separator removed.
type Entry struct {
	Path     string
	Name     string
	Disabled bool
}

// Parse reads manifest lines from data. Header lines (I/A, version,
// SCENERY), blank lines, comments, and lines with an unknown prefix are
// skipped silently.
func Parse(data string) []Entry {
	var entries []Entry

	sc := bufio.NewScanner(strings.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if e, ok := parseLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// parseLine extracts one entry. The path is everything after the prefix,
// untrimmed: trailing spaces inside a folder name are significant.
func parseLine(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Entry{}, false
	}

	var path string
	var disabled bool
	switch {
	case strings.HasPrefix(line, prefixDisabled):
		path = line[len(prefixDisabled):]
		disabled = true
	case strings.HasPrefix(line, prefixActive):
		path = line[len(prefixActive):]
	default:
		// Header (I, 1000 Version, SCENERY) or junk.
		return Entry{}, false
	}

	if path == "" {
		return Entry{}, false
	}
	return Entry{Path: path, Name: nameOf(path), Disabled: disabled}, true
}

// nameOf returns the final path component. Only the single trailing
// separator is stripped; any whitespace belonging to the folder name stays.
func nameOf(path string) string {
	p := strings.TrimSuffix(path, "/")
	p = strings.TrimSuffix(p, "\\")
	if i := strings.LastIndexAny(p, "/\\"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Load reads and parses the manifest file at path.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoManifest
		}
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(string(data)), nil
}
