// Package iotesting provides shared fixture writers for tests that
// need taxdump files, merged-ID dumps, or MIBiG-style entry
// directories. This is an internal package for test infrastructure
// only.
package iotesting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TaxdumpRow formats one taxon record in NCBI's dump framing
// (tab-pipe-tab field separators, tab-pipe line terminator).
func TaxdumpRow(taxID, parentID int, name, rank string) string {
	return fmt.Sprintf("%d\t|\t%d\t|\t%s\t|\t%s\t|", taxID, parentID, name, rank)
}

// MergedRow formats one merged-ID redirect in NCBI's dump framing.
func MergedRow(oldID, newID int) string {
	return fmt.Sprintf("%d\t|\t%d\t|", oldID, newID)
}

// WriteTaxdump writes the given rows as a taxdump file inside dir and
// returns its path.
func WriteTaxdump(t *testing.T, dir string, rows ...string) string {
	t.Helper()
	return writeFile(t, dir, "taxdump.dmp", rows)
}

// WriteMerged writes the given rows as a merged-ID dump inside dir and
// returns its path.
func WriteMerged(t *testing.T, dir string, rows ...string) string {
	t.Helper()
	return writeFile(t, dir, "merged.dmp", rows)
}

func writeFile(t *testing.T, dir, name string, rows []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := strings.Join(rows, "\n")
	if len(rows) > 0 {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}

// WriteEntry writes one MIBiG-style JSON entry referencing taxID into
// dir and returns its path. The accession becomes the file name.
func WriteEntry(t *testing.T, dir, accession string, taxID int) string {
	t.Helper()
	path := filepath.Join(dir, accession+".json")
	data := fmt.Sprintf(
		`{"cluster": {"mibig_accession": %q, "ncbi_tax_id": %d}}`,
		accession, taxID,
	)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}

// WriteEntryStringID is WriteEntry with the taxon ID serialized as a
// JSON string, the form used by older MIBiG releases.
func WriteEntryStringID(t *testing.T, dir, accession string, taxID string) string {
	t.Helper()
	path := filepath.Join(dir, accession+".json")
	data := fmt.Sprintf(
		`{"cluster": {"mibig_accession": %q, "ncbi_tax_id": %q}}`,
		accession, taxID,
	)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}
