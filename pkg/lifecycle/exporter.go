package lifecycle

import (
	"context"

	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
)

// Exporter writes a built cache into a secondary, inspection-only
// representation. The export is never a load source; the JSON cache
// file stays the single source of truth.
type Exporter interface {
	// Export writes the cache to path, replacing any previous export.
	Export(ctx context.Context, cache *taxa.Cache, path string) error
}
