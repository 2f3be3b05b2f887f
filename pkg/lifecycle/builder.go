// Package lifecycle defines the interfaces between the pure taxon
// cache engine and its io-bound collaborators. Implementations live in
// internal/io* packages; contract tests in this package pin each
// implementation to its interface at compile time.
package lifecycle

import (
	"context"

	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
)

// Builder runs the one-shot cache construction pipeline: parse the two
// dump files, flatten merged-ID redirects, expand the interesting IDs
// into their lineage closure, and assemble the immutable cache.
//
// Construction is all-or-nothing: any stage failure returns an error
// and no partial cache.
type Builder interface {
	// Build parses taxdumpPath and mergedPath and assembles a cache
	// restricted to interesting taxa and their ancestors.
	Build(
		ctx context.Context,
		taxdumpPath, mergedPath string,
		interesting []int,
	) (*taxa.Cache, error)
}
