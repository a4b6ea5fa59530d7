// Package cache persists pack content descriptors so large ortho packs are
// only peeked once. Entries are keyed by pack path and invalidated by
// modification time. An in-memory LRU sits in front of a local SQLite
// database; both layers are write-through.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/startuz/xoxide/internal/scenery"
)

// DefaultLRUSize bounds the in-memory layer. A full install rarely exceeds
// a couple thousand packs.
const DefaultLRUSize = 2048

// schema is executed on every open; IF NOT EXISTS keeps it idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS descriptors (
    path        TEXT PRIMARY KEY,
    mtime_unix  INTEGER NOT NULL,
    objects     INTEGER NOT NULL DEFAULT 0,
    facades     INTEGER NOT NULL DEFAULT 0,
    forests     INTEGER NOT NULL DEFAULT 0,
    polygons    INTEGER NOT NULL DEFAULT 0,
    airport_ref INTEGER NOT NULL DEFAULT 0,
    libraries   TEXT NOT NULL DEFAULT '[]'
);
`

// cached pairs a descriptor with the mtime it was computed against.
type cached struct {
	mtime int64
	desc  scenery.Descriptor
}

// Store is the two-layer descriptor cache.
type Store struct {
	db  *sql.DB
	mem *lru.Cache[string, cached]
}

// Open opens (or creates) the cache database at dbPath, enables WAL mode
// and a busy timeout, and creates the schema.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("cache: open database: %w", err)
	}

	// One connection: SQLite has a single writer and pooled connections each
	// need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("cache: %s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}

	mem, err := lru.New[string, cached](DefaultLRUSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create LRU: %w", err)
	}
	return &Store{db: db, mem: mem}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached descriptor for path if one exists and its recorded
// mtime matches. A stale or missing entry reports ok=false.
func (s *Store) Get(ctx context.Context, path string, mtime int64) (scenery.Descriptor, bool, error) {
	if c, ok := s.mem.Get(path); ok && c.mtime == mtime {
		return c.desc, true, nil
	}

	var (
		desc       scenery.Descriptor
		gotMtime   int64
		airportRef int
		libsJSON   string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT mtime_unix, objects, facades, forests, polygons, airport_ref, libraries
		   FROM descriptors WHERE path = ?`, path,
	).Scan(&gotMtime, &desc.Objects, &desc.Facades, &desc.Forests, &desc.Polygons, &airportRef, &libsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return scenery.Descriptor{}, false, nil
	}
	if err != nil {
		return scenery.Descriptor{}, false, fmt.Errorf("cache: get %q: %w", path, err)
	}
	if gotMtime != mtime {
		return scenery.Descriptor{}, false, nil
	}

	desc.HasAirportRef = airportRef != 0
	if err := json.Unmarshal([]byte(libsJSON), &desc.Libraries); err != nil {
		// Corrupt row: treat as a miss so the peek recomputes it.
		return scenery.Descriptor{}, false, nil
	}

	s.mem.Add(path, cached{mtime: mtime, desc: desc})
	return desc, true, nil
}

// Put stores a descriptor for path at the given mtime, replacing any
// previous entry.
func (s *Store) Put(ctx context.Context, path string, mtime int64, desc scenery.Descriptor) error {
	libsJSON, err := json.Marshal(desc.Libraries)
	if err != nil {
		return fmt.Errorf("cache: encode libraries for %q: %w", path, err)
	}
	airportRef := 0
	if desc.HasAirportRef {
		airportRef = 1
	}

	const q = `
		INSERT INTO descriptors (path, mtime_unix, objects, facades, forests, polygons, airport_ref, libraries)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			mtime_unix = excluded.mtime_unix,
			objects = excluded.objects,
			facades = excluded.facades,
			forests = excluded.forests,
			polygons = excluded.polygons,
			airport_ref = excluded.airport_ref,
			libraries = excluded.libraries`
	if _, err := s.db.ExecContext(ctx, q, path, mtime,
		desc.Objects, desc.Facades, desc.Forests, desc.Polygons, airportRef, string(libsJSON)); err != nil {
		return fmt.Errorf("cache: put %q: %w", path, err)
	}

	s.mem.Add(path, cached{mtime: mtime, desc: desc})
	return nil
}

// Prune deletes cached rows for paths not in keep. Run after a scan so
// removed packs do not accumulate.
func (s *Store) Prune(ctx context.Context, keep map[string]bool) error {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM descriptors`)
	if err != nil {
		return fmt.Errorf("cache: list paths: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return fmt.Errorf("cache: scan path: %w", err)
		}
		if !keep[p] {
			stale = append(stale, p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("cache: iterate paths: %w", err)
	}

	for _, p := range stale {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM descriptors WHERE path = ?`, p); err != nil {
			return fmt.Errorf("cache: delete %q: %w", p, err)
		}
		s.mem.Remove(p)
	}
	return nil
}
