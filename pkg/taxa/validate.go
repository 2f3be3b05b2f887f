package taxa

import (
	"fmt"
)

// Validate checks the structural invariants of a cache. A freshly
// assembled cache always passes; the check exists for caches coming
// from deserialization, where the file may have been truncated or
// hand-edited. The returned error is a plain description; the caller
// wraps it into its own error kind (CorruptCache for loads).
func (c *Cache) Validate() error {
	if c.Meta.FormatVersion != FormatVersion {
		return fmt.Errorf(
			"unsupported cache format version %q", c.Meta.FormatVersion,
		)
	}
	if c.Meta.RecordCount != len(c.Records) {
		return fmt.Errorf("record count mismatch: header %d, found %d",
			c.Meta.RecordCount, len(c.Records))
	}
	if c.Meta.MergedCount != len(c.Merged) {
		return fmt.Errorf("merged count mismatch: header %d, found %d",
			c.Meta.MergedCount, len(c.Merged))
	}

	for id, rec := range c.Records {
		if id != rec.TaxonID {
			return fmt.Errorf("record key %d holds taxon ID %d",
				id, rec.TaxonID)
		}
		if rec.TaxonID < 0 || rec.ParentID < 0 {
			return fmt.Errorf("negative ID on record %d", id)
		}
		if rec.IsRoot() {
			continue
		}
		if _, ok := c.Records[rec.ParentID]; !ok {
			return fmt.Errorf("record %d has dangling parent %d",
				id, rec.ParentID)
		}
	}

	if err := c.validateParentChains(); err != nil {
		return err
	}

	for old, newID := range c.Merged {
		if _, ok := c.Records[newID]; !ok {
			return fmt.Errorf("merged ID %d points to missing record %d",
				old, newID)
		}
	}

	if fp := c.Fingerprint(); fp != c.Meta.Fingerprint {
		return fmt.Errorf("fingerprint mismatch: header %s, content %s",
			c.Meta.Fingerprint, fp)
	}

	return nil
}

// validateParentChains walks every parent chain once and rejects
// cycles. Records whose chain was already cleared are skipped, so the
// pass is linear in the cache size.
func (c *Cache) validateParentChains() error {
	cleared := make(map[int]bool, len(c.Records))

	for id := range c.Records {
		visited := make(map[int]bool)
		cur := id
		for {
			if cleared[cur] {
				break
			}
			if visited[cur] {
				return fmt.Errorf("parent cycle through record %d", cur)
			}
			visited[cur] = true

			rec := c.Records[cur]
			if rec.IsRoot() {
				break
			}
			cur = rec.ParentID
		}
		for v := range visited {
			cleared[v] = true
		}
	}
	return nil
}
