// Package iocache persists the taxon cache as a JSON document and
// restores it with full invariant validation, so a loaded cache is
// observably identical to a freshly built one.
package iocache

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/mibig-secmet/mibigtaxa/pkg/lifecycle"
	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
)

type store struct {
	enc gnfmt.GNjson
}

// NewStore creates a JSON-backed cache store.
func NewStore() lifecycle.CacheStore {
	return &store{enc: gnfmt.GNjson{Pretty: true}}
}

// Save serializes the cache to path and returns the number of bytes
// written. The encoder emits map keys in sorted order, so the output
// is a pure function of the cache content.
func (s *store) Save(cache *taxa.Cache, path string) (int, error) {
	dir := filepath.Dir(path)
	if err := gnsys.MakeDir(dir); err != nil {
		return 0, CreateDirError(dir, err)
	}

	data, err := s.enc.Encode(cache)
	if err != nil {
		return 0, WriteFileError(path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return 0, WriteFileError(path, err)
	}

	slog.Info("Saved taxon cache",
		"path", path,
		"bytes", len(data),
		"records", cache.Len(),
	)
	return len(data), nil
}

// Load reads a cache from path and revalidates every invariant a
// fresh build guarantees. Unparsable content or structural violations
// fail with CorruptCache; an unreadable path fails with the IO error.
func (s *store) Load(path string) (*taxa.Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}

	var cache taxa.Cache
	if err = s.enc.Decode(data, &cache); err != nil {
		return nil, CorruptCacheError(path, err)
	}

	if cache.Records == nil {
		cache.Records = make(map[int]taxa.Record)
	}
	if cache.Merged == nil {
		cache.Merged = make(map[int]int)
	}

	if err = cache.Validate(); err != nil {
		return nil, CorruptCacheError(path, err)
	}

	slog.Info("Loaded taxon cache",
		"path", path,
		"records", cache.Len(),
		"merged_ids", len(cache.Merged),
	)
	return &cache, nil
}
