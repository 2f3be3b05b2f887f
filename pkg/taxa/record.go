// Package taxa implements the taxon cache: a compact, immutable subset
// of the NCBI taxonomy restricted to the taxa referenced by a dataset
// plus their full ancestor lineage.
//
// The package is pure: it works on in-memory tables produced by the
// taxdump parser and never touches the file system. Reading dump files
// and persisting caches live in internal/iotaxdump and internal/iocache.
package taxa

// RootSentinel is the parent ID that marks a record with no parent.
// NCBI's root node (tax_id 1) lists itself as its own parent, so a
// record is also treated as a root when ParentID equals TaxonID.
const RootSentinel = 0

// Record is one taxonomic entry of the cache.
type Record struct {
	// TaxonID is the NCBI taxonomy ID, unique within a cache.
	TaxonID int `json:"taxon_id"`

	// ParentID references another Record's TaxonID, or RootSentinel.
	ParentID int `json:"parent_id"`

	// Rank is the taxonomic rank (species, genus, family...). It is
	// semantic only and never validated against a fixed list.
	Rank string `json:"rank"`

	// Name is the scientific name of the taxon.
	Name string `json:"name"`

	// LineageNames is the chain of ancestor names from the immediate
	// parent up to the root, precomputed during cache assembly so that
	// queries never walk the tree.
	LineageNames []string `json:"lineage_names"`
}

// IsRoot reports whether the record has no parent.
func (r Record) IsRoot() bool {
	return r.ParentID == RootSentinel || r.ParentID == r.TaxonID
}

// MergedPair is one deprecated-ID redirect from the NCBI merged dump.
// NewID may itself be deprecated; chains are followed to a fixed point
// during cache assembly.
type MergedPair struct {
	OldID int
	NewID int
}
