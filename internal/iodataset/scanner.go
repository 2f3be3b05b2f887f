// Package iodataset extracts the interesting taxon IDs from a MIBiG
// entry directory. Each entry is a JSON file whose cluster block names
// the producing organism's NCBI taxonomy ID. The cache engine never
// sees this format; the scanner hands it a plain list of IDs.
package iodataset

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/mibig-secmet/mibigtaxa/pkg/lifecycle"
)

// entry is the minimal slice of a MIBiG JSON document the scanner
// cares about. MIBiG releases have stored ncbi_tax_id both as a JSON
// number and as a string, so the field stays untyped until coercion.
type entry struct {
	Cluster struct {
		NcbiTaxID any `json:"ncbi_tax_id"`
	} `json:"cluster"`
}

type scanner struct {
	enc gnfmt.GNjson
}

// NewScanner creates a dataset scanner for MIBiG-style entries.
func NewScanner() lifecycle.DatasetScanner {
	return &scanner{enc: gnfmt.GNjson{}}
}

// ScanIDs reads every *.json file in dir and returns the sorted,
// de-duplicated taxon IDs they reference. Entries without a usable
// ncbi_tax_id are skipped with a warning; an unreadable file or
// unparsable JSON fails the scan.
func (s *scanner) ScanIDs(dir string) ([]int, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ScanError(dir, err)
	}

	ids := make(map[int]struct{})
	var files int
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, de.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, ScanError(path, err)
		}

		var e entry
		if err = s.enc.Decode(data, &e); err != nil {
			return nil, ScanError(path, err)
		}
		files++

		id, ok := coerceID(e.Cluster.NcbiTaxID)
		if !ok {
			slog.Warn("Entry has no usable ncbi_tax_id", "path", path)
			continue
		}
		ids[id] = struct{}{}
	}

	res := slices.Sorted(maps.Keys(ids))
	slog.Info("Scanned dataset directory",
		"dir", dir, "entries", files, "taxon_ids", len(res))
	return res, nil
}

// coerceID turns the untyped ncbi_tax_id value into a positive int.
func coerceID(v any) (int, bool) {
	switch val := v.(type) {
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	case float64:
		id := int(val)
		if float64(id) != val || id <= 0 {
			return 0, false
		}
		return id, true
	case fmt.Stringer:
		return coerceID(val.String())
	default:
		return 0, false
	}
}
