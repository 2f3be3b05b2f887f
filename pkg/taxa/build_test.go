package taxa_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/mibig-secmet/mibigtaxa/pkg/errcode"
	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// homoRecords is the minimal taxdump from the cache scenarios:
// Homo sapiens under Homo, next to an unrelated genus.
func homoRecords() map[int]taxa.Record {
	return map[int]taxa.Record{
		9605: {TaxonID: 9605, ParentID: 0, Name: "Homo", Rank: "genus"},
		9606: {
			TaxonID: 9606, ParentID: 9605,
			Name: "Homo sapiens", Rank: "species",
		},
		10: {TaxonID: 10, ParentID: 0, Name: "Cellvibrio", Rank: "genus"},
	}
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "expected *gn.Error, got %v", err)
	return gnErr.Code
}

func TestAssembleLineageClosure(t *testing.T) {
	cache, err := taxa.Assemble(homoRecords(), nil, []int{9606})
	require.NoError(t, err)

	// The ancestor came in with the interesting taxon, the unrelated
	// genus did not.
	assert.Equal(t, 2, cache.Len())
	assert.Contains(t, cache.Records, 9606)
	assert.Contains(t, cache.Records, 9605)
	assert.NotContains(t, cache.Records, 10)

	name, err := cache.NameByID(9606, false)
	require.NoError(t, err)
	assert.Equal(t, "Homo sapiens", name)

	lineage, err := cache.LineageByID(9606, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Homo"}, lineage)

	lineage, err = cache.LineageByID(9605, false)
	require.NoError(t, err)
	assert.Empty(t, lineage)
}

func TestAssembleSelfParentRoot(t *testing.T) {
	// NCBI's real root (tax_id 1) lists itself as its own parent.
	records := map[int]taxa.Record{
		1: {TaxonID: 1, ParentID: 1, Name: "root", Rank: "no rank"},
		2: {TaxonID: 2, ParentID: 1, Name: "Bacteria", Rank: "superkingdom"},
	}
	cache, err := taxa.Assemble(records, nil, []int{2})
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
	lineage, err := cache.LineageByID(2, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"root"}, lineage)
}

func TestAssembleMergedChain(t *testing.T) {
	records := map[int]taxa.Record{
		2: {TaxonID: 2, ParentID: 0, Name: "Taxon2", Rank: "genus"},
	}
	merges := []taxa.MergedPair{{OldID: 1, NewID: 2}}

	cache, err := taxa.Assemble(records, merges, []int{2})
	require.NoError(t, err)

	name, err := cache.NameByID(1, true)
	require.NoError(t, err)
	assert.Equal(t, "Taxon2", name)

	// Without deprecated-ID tolerance the old ID stays unknown.
	_, err = cache.NameByID(1, false)
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownTaxonIDError, errCode(t, err))
}

func TestAssembleMergedChainFlattening(t *testing.T) {
	records := map[int]taxa.Record{
		4: {TaxonID: 4, ParentID: 0, Name: "Taxon4", Rank: "genus"},
	}
	// 1 -> 2 -> 3 -> 4 must flatten to the terminal target.
	merges := []taxa.MergedPair{
		{OldID: 1, NewID: 2},
		{OldID: 2, NewID: 3},
		{OldID: 3, NewID: 4},
	}

	cache, err := taxa.Assemble(records, merges, []int{4})
	require.NoError(t, err)

	assert.Equal(t, 4, cache.Merged[1])
	assert.Equal(t, 4, cache.Merged[2])
	assert.Equal(t, 4, cache.Merged[3])

	name, err := cache.NameByID(1, true)
	require.NoError(t, err)
	assert.Equal(t, "Taxon4", name)
}

func TestAssembleInterestingViaMerge(t *testing.T) {
	// A dataset referencing a retired ID still builds, through the
	// redirect, and pulls in the replacement's lineage.
	records := homoRecords()
	merges := []taxa.MergedPair{{OldID: 499551, NewID: 9606}}

	cache, err := taxa.Assemble(records, merges, []int{499551})
	require.NoError(t, err)

	assert.Contains(t, cache.Records, 9606)
	assert.Contains(t, cache.Records, 9605)

	name, err := cache.NameByID(499551, true)
	require.NoError(t, err)
	assert.Equal(t, "Homo sapiens", name)
}

func TestAssembleUnknownTaxa(t *testing.T) {
	_, err := taxa.Assemble(homoRecords(), nil, []int{42})
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownTaxonIDError, errCode(t, err))

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Contains(t, gnErr.Err.Error(), "42")
}

func TestAssembleCollectsAllUnknownTaxa(t *testing.T) {
	// Every unresolvable ID of a run is reported in one error, not
	// just the first one.
	_, err := taxa.Assemble(homoRecords(), nil, []int{42, 9606, 77})
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.UnknownTaxonIDError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "42")
	assert.Contains(t, gnErr.Err.Error(), "77")
}

func TestAssembleCyclicMerge(t *testing.T) {
	records := homoRecords()
	merges := []taxa.MergedPair{
		{OldID: 5, NewID: 6},
		{OldID: 6, NewID: 5},
	}

	_, err := taxa.Assemble(records, merges, []int{9606})
	require.Error(t, err)
	assert.Equal(t, errcode.CyclicMergeError, errCode(t, err))
}

func TestAssembleCyclicLineage(t *testing.T) {
	records := map[int]taxa.Record{
		10: {TaxonID: 10, ParentID: 11, Name: "A", Rank: "genus"},
		11: {TaxonID: 11, ParentID: 10, Name: "B", Rank: "family"},
	}

	_, err := taxa.Assemble(records, nil, []int{10})
	require.Error(t, err)
	assert.Equal(t, errcode.CyclicLineageError, errCode(t, err))
}

func TestAssembleMissingAncestor(t *testing.T) {
	// A record whose parent is absent from the dump is a collected
	// data-quality problem, like an unknown interesting ID.
	records := map[int]taxa.Record{
		9606: {
			TaxonID: 9606, ParentID: 9605,
			Name: "Homo sapiens", Rank: "species",
		},
	}

	_, err := taxa.Assemble(records, nil, []int{9606})
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownTaxonIDError, errCode(t, err))

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Contains(t, gnErr.Err.Error(), "9605")
}

func TestAssembleDropsDanglingMerges(t *testing.T) {
	// Redirects whose terminal target did not survive the subset
	// selection are dropped, not kept as dangling entries.
	records := homoRecords()
	merges := []taxa.MergedPair{
		{OldID: 499551, NewID: 9606},
		{OldID: 99, NewID: 10}, // 10 is not selected
		{OldID: 7, NewID: 8},   // 8 is not in the dump at all
	}

	cache, err := taxa.Assemble(records, merges, []int{9606})
	require.NoError(t, err)

	assert.Equal(t, map[int]int{499551: 9606}, cache.Merged)

	_, err = cache.NameByID(99, true)
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownTaxonIDError, errCode(t, err))
}

func TestAssembleEmptyInteresting(t *testing.T) {
	cache, err := taxa.Assemble(homoRecords(), nil, nil)
	require.NoError(t, err)
	assert.Zero(t, cache.Len())
	assert.Empty(t, cache.Merged)
}

func TestAssembleMeta(t *testing.T) {
	cache, err := taxa.Assemble(
		homoRecords(),
		[]taxa.MergedPair{{OldID: 499551, NewID: 9606}},
		[]int{9606},
	)
	require.NoError(t, err)

	assert.Equal(t, "1", cache.Meta.FormatVersion)
	assert.Equal(t, 2, cache.Meta.RecordCount)
	assert.Equal(t, 1, cache.Meta.MergedCount)
	assert.Equal(t, cache.Fingerprint(), cache.Meta.Fingerprint)
	assert.NoError(t, cache.Validate())
}

func TestAssembleDeterministicFingerprint(t *testing.T) {
	build := func() *taxa.Cache {
		cache, err := taxa.Assemble(
			homoRecords(),
			[]taxa.MergedPair{{OldID: 499551, NewID: 9606}},
			[]int{9606},
		)
		require.NoError(t, err)
		return cache
	}

	assert.Equal(t,
		build().Meta.Fingerprint,
		build().Meta.Fingerprint,
	)
}
