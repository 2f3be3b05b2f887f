package taxa

import (
	"log/slog"
	"maps"
	"slices"
)

// Assemble builds a Cache from the raw taxdump tables and the set of
// taxon IDs referenced by the dataset. It flattens the merged-ID
// redirects, resolves every interesting ID to a live record, expands
// the set with all ancestors up to the root, and precomputes lineage
// names for every selected record.
//
// Any failure aborts the whole build: no partial cache is ever
// returned. IDs that cannot be resolved are collected across the whole
// interesting set and reported together in one UnknownTaxonID error, so
// a single run surfaces every data-quality problem at once.
func Assemble(
	records map[int]Record,
	merges []MergedPair,
	interesting []int,
) (*Cache, error) {
	flat, err := flattenMerges(merges)
	if err != nil {
		return nil, err
	}

	selected, err := lineageClosure(records, flat, interesting)
	if err != nil {
		return nil, err
	}

	res := &Cache{
		Records: make(map[int]Record, len(selected)),
		Merged:  make(map[int]int),
	}

	for id := range selected {
		rec := records[id]
		rec.LineageNames = lineageNames(rec, records)
		res.Records[id] = rec
	}

	// Open question resolved here: redirects whose terminal target did
	// not survive the subset selection are dropped, so every Merged
	// value is a live Records key.
	for old, term := range flat {
		if _, ok := res.Records[term]; ok {
			res.Merged[old] = term
		} else {
			slog.Debug("Dropping dangling merged ID",
				"old_id", old, "new_id", term)
		}
	}

	res.Meta = Meta{
		FormatVersion: FormatVersion,
		Fingerprint:   res.Fingerprint(),
		RecordCount:   len(res.Records),
		MergedCount:   len(res.Merged),
	}

	return res, nil
}

// flattenMerges resolves every redirect chain to its terminal ID so
// that runtime lookups are a single map access. A revisited ID within
// one chain is a redirect cycle and fails the build.
func flattenMerges(merges []MergedPair) (map[int]int, error) {
	adjacency := make(map[int]int, len(merges))
	for _, p := range merges {
		adjacency[p.OldID] = p.NewID
	}

	flat := make(map[int]int, len(adjacency))
	for old := range adjacency {
		term, err := resolveChain(old, adjacency, flat)
		if err != nil {
			return nil, err
		}
		flat[old] = term
	}
	return flat, nil
}

// resolveChain follows redirects from start until an ID with no further
// redirect. Already-flattened IDs short-circuit the walk, compressing
// paths as chains are processed.
func resolveChain(start int, adjacency, flat map[int]int) (int, error) {
	var path []int
	seen := make(map[int]bool)
	cur := start
	for {
		if term, ok := flat[cur]; ok {
			return term, nil
		}
		if seen[cur] {
			path = append(path, cur)
			return 0, cyclicMergeError(path)
		}
		seen[cur] = true
		path = append(path, cur)

		next, ok := adjacency[cur]
		if !ok {
			return cur, nil
		}
		cur = next
	}
}

// lineageClosure resolves the interesting IDs against the taxdump and
// expands them with every ancestor reachable through parent links.
// Unresolvable IDs (including ancestors missing from the dump) are
// collected and reported in one error; a parent cycle aborts
// immediately.
func lineageClosure(
	records map[int]Record,
	flat map[int]int,
	interesting []int,
) (map[int]struct{}, error) {
	selected := make(map[int]struct{})
	problems := make(map[int]struct{})

	for _, id := range interesting {
		seed := id
		if _, ok := records[seed]; !ok {
			term, ok := flat[seed]
			if !ok {
				problems[id] = struct{}{}
				continue
			}
			if _, ok = records[term]; !ok {
				problems[id] = struct{}{}
				continue
			}
			slog.Debug("Interesting taxon ID is deprecated",
				"old_id", id, "new_id", term)
			seed = term
		}

		if err := walkAncestors(seed, records, selected, problems); err != nil {
			return nil, err
		}
	}

	if len(problems) > 0 {
		return nil, unknownTaxaError(slices.Sorted(maps.Keys(problems)))
	}
	return selected, nil
}

// walkAncestors adds seed and all its ancestors to selected. A parent
// chain that revisits an ID is a taxdump integrity violation.
func walkAncestors(
	seed int,
	records map[int]Record,
	selected map[int]struct{},
	problems map[int]struct{},
) error {
	var path []int
	visited := make(map[int]bool)
	cur := seed
	for {
		if visited[cur] {
			path = append(path, cur)
			return cyclicLineageError(path)
		}
		visited[cur] = true
		path = append(path, cur)

		rec, ok := records[cur]
		if !ok {
			problems[cur] = struct{}{}
			return nil
		}

		if _, done := selected[cur]; done {
			// This ancestor chain was already verified and selected.
			return nil
		}
		selected[cur] = struct{}{}

		if rec.IsRoot() {
			return nil
		}
		cur = rec.ParentID
	}
}

// lineageNames walks the parent chain of rec and returns the ancestor
// names from the immediate parent up to the root. The closure pass has
// already guaranteed that every ancestor exists and that the chain is
// acyclic.
func lineageNames(rec Record, records map[int]Record) []string {
	names := []string{}
	cur := rec
	for !cur.IsRoot() {
		cur = records[cur.ParentID]
		names = append(names, cur.Name)
	}
	return names
}
