package lifecycle

import (
	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
)

// CacheStore persists a taxon cache and restores it later. The
// serialized form is a JSON document; load must behave exactly like a
// fresh build for every query, so it revalidates all cache invariants.
type CacheStore interface {
	// Save writes the cache to path and returns the number of bytes
	// written. Serialization is a pure function of the cache content:
	// two builds from identical inputs produce identical files.
	Save(cache *taxa.Cache, path string) (int, error)

	// Load reads a cache from path. Structural violations (dangling
	// parents, dead merged targets, parent cycles, header mismatches)
	// fail with CorruptCache.
	Load(path string) (*taxa.Cache, error)
}

// DatasetScanner produces the interesting-ID set from a dataset
// directory. The cache engine itself never reads the dataset; this is
// the external collaborator wired in by the CLI.
type DatasetScanner interface {
	// ScanIDs returns the sorted, de-duplicated taxon IDs referenced by
	// the dataset entries in dir.
	ScanIDs(dir string) ([]int, error)
}
