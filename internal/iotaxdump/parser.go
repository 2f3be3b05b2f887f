// Package iotaxdump reads NCBI taxdump files and drives the one-shot
// cache build. Two files are consumed: the taxon dump with one record
// per line (tax_id, parent_id, name, rank) and the merged-ID dump with
// one (old_id, new_id) redirect per line. Both use NCBI's field
// delimiter, a pipe framed by tabs; plain pipes are accepted too.
package iotaxdump

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
)

// Taxdump lines can carry long name fields; default Scanner limits are
// too tight for some dumps.
const maxLineBytes = 1024 * 1024

// parseTaxdump reads the taxon dump into a raw record table. Lineage
// names are left empty; they are computed later from parent links
// during assembly. The file is read once, sequentially, and closed on
// every exit path.
func parseTaxdump(
	path string,
	withProgress bool,
) (map[int]taxa.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	var reader io.Reader = f
	if withProgress {
		if fi, err := f.Stat(); err == nil && fi.Size() > 0 {
			bar := pb.Full.Start64(fi.Size())
			bar.Set("prefix", "Parsing taxdump ")
			bar.Set(pb.Bytes, true)
			bar.Set(pb.CleanOnFinish, true)
			defer bar.Finish()
			reader = bar.NewProxyReader(f)
		}
	}

	res := make(map[int]taxa.Record)
	sc := bufio.NewScanner(reader)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lineNum int
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitRow(line)
		if len(fields) != 4 {
			return nil, MalformedRecordError(path, lineNum, line)
		}

		taxID, ok := parseID(fields[0])
		if !ok {
			return nil, MalformedRecordError(path, lineNum, line)
		}
		parentID, ok := parseID(fields[1])
		if !ok {
			return nil, MalformedRecordError(path, lineNum, line)
		}

		if _, dup := res[taxID]; dup {
			slog.Warn("Duplicate taxon ID in taxdump, keeping last",
				"tax_id", taxID, "line", lineNum)
		}
		res[taxID] = taxa.Record{
			TaxonID:  taxID,
			ParentID: parentID,
			Name:     fields[2],
			Rank:     fields[3],
		}
	}
	if err := sc.Err(); err != nil {
		return nil, ReadFileError(path, err)
	}

	return res, nil
}

// parseMerged reads the merged-ID dump into redirect pairs, keeping
// the file order.
func parseMerged(path string) ([]taxa.MergedPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	var res []taxa.MergedPair
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lineNum int
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitRow(line)
		if len(fields) != 2 {
			return nil, MalformedRecordError(path, lineNum, line)
		}
		oldID, ok := parseID(fields[0])
		if !ok {
			return nil, MalformedRecordError(path, lineNum, line)
		}
		newID, ok := parseID(fields[1])
		if !ok {
			return nil, MalformedRecordError(path, lineNum, line)
		}

		res = append(res, taxa.MergedPair{OldID: oldID, NewID: newID})
	}
	if err := sc.Err(); err != nil {
		return nil, ReadFileError(path, err)
	}

	return res, nil
}

// splitRow splits one dump line into trimmed fields. NCBI frames
// fields with "\t|\t" and terminates lines with "\t|"; hand-made
// fixtures often use bare pipes, which work as well.
func splitRow(line string) []string {
	line = strings.TrimSuffix(line, "\t|")

	var fields []string
	if strings.Contains(line, "\t|\t") {
		fields = strings.Split(line, "\t|\t")
	} else {
		line = strings.TrimSuffix(strings.TrimSpace(line), "|")
		fields = strings.Split(line, "|")
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// parseID parses a non-negative integer ID field.
func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
