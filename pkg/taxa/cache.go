package taxa

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// FormatVersion is written into serialized caches. Loading fails when
// a cache declares a different version.
const FormatVersion = "1"

// Cache is the queryable taxon subset. It is assembled once, either by
// Assemble or by deserialization, and is never mutated afterwards, so a
// single instance can serve any number of concurrent readers without
// locking. Rebuilding means constructing a new instance.
type Cache struct {
	// Meta describes the cache content for integrity checks.
	Meta Meta `json:"metadata"`

	// Records maps a taxon ID to its record.
	Records map[int]Record `json:"records"`

	// Merged maps a deprecated taxon ID to its terminal replacement.
	// Redirect chains are flattened at build time, and every value is a
	// live key of Records; dangling redirects are dropped during
	// assembly.
	Merged map[int]int `json:"merged"`
}

// Meta is the header of a serialized cache.
type Meta struct {
	// FormatVersion identifies the serialization format.
	FormatVersion string `json:"format_version"`

	// Fingerprint is a UUIDv5 of the canonical cache content. Two
	// builds from identical inputs produce the same fingerprint.
	Fingerprint string `json:"fingerprint"`

	// RecordCount is the number of entries in Records.
	RecordCount int `json:"record_count"`

	// MergedCount is the number of entries in Merged.
	MergedCount int `json:"merged_count"`
}

// Len returns the number of taxon records in the cache.
func (c *Cache) Len() int {
	return len(c.Records)
}

// resolve finds the live record for id. When allowDeprecated is true
// and id is not a live key, the flattened merged mapping is consulted.
func (c *Cache) resolve(id int, allowDeprecated bool) (Record, error) {
	if rec, ok := c.Records[id]; ok {
		return rec, nil
	}
	if allowDeprecated {
		if newID, ok := c.Merged[id]; ok {
			if rec, ok := c.Records[newID]; ok {
				return rec, nil
			}
		}
	}
	return Record{}, notFoundError(id)
}

// NameByID returns the scientific name of a taxon. With allowDeprecated
// the lookup falls back to the merged-ID redirect table.
func (c *Cache) NameByID(id int, allowDeprecated bool) (string, error) {
	rec, err := c.resolve(id, allowDeprecated)
	if err != nil {
		return "", err
	}
	return rec.Name, nil
}

// LineageByID returns the precomputed ancestor names of a taxon, from
// the immediate parent up to the root.
func (c *Cache) LineageByID(id int, allowDeprecated bool) ([]string, error) {
	rec, err := c.resolve(id, allowDeprecated)
	if err != nil {
		return nil, err
	}
	return rec.LineageNames, nil
}

// Get returns the full record of a taxon.
func (c *Cache) Get(id int, allowDeprecated bool) (Record, error) {
	return c.resolve(id, allowDeprecated)
}

// Fingerprint computes the deterministic UUIDv5 of the cache content.
// The canonical form lists records and merges sorted by ID, so map
// iteration order never leaks into the result.
func (c *Cache) Fingerprint() string {
	var b strings.Builder

	for _, id := range slices.Sorted(maps.Keys(c.Records)) {
		rec := c.Records[id]
		fmt.Fprintf(&b, "%d|%d|%s|%s|%s\n",
			rec.TaxonID, rec.ParentID, rec.Rank, rec.Name,
			strings.Join(rec.LineageNames, "|"),
		)
	}
	for _, id := range slices.Sorted(maps.Keys(c.Merged)) {
		fmt.Fprintf(&b, "%d>%d\n", id, c.Merged[id])
	}

	var res uuid.UUID = gnuuid.New(b.String())
	return res.String()
}
