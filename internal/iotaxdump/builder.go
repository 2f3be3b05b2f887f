package iotaxdump

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/mibig-secmet/mibigtaxa/pkg/config"
	"github.com/mibig-secmet/mibigtaxa/pkg/lifecycle"
	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
	"golang.org/x/sync/errgroup"
)

// builder implements lifecycle.Builder on top of the dump parsers and
// the pure assembly in pkg/taxa.
type builder struct {
	cfg *config.Config
}

// NewBuilder creates a cache builder configured by cfg.
func NewBuilder(cfg *config.Config) lifecycle.Builder {
	return &builder{cfg: cfg}
}

// Build parses the two dump files in parallel and assembles the cache.
// Only the taxon dump gets a progress bar; it is orders of magnitude
// larger than the merged dump.
func (b *builder) Build(
	ctx context.Context,
	taxdumpPath, mergedPath string,
	interesting []int,
) (*taxa.Cache, error) {
	var (
		records map[int]taxa.Record
		merges  []taxa.MergedPair
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = parseTaxdump(taxdumpPath, b.cfg.WithProgress)
		return err
	})
	g.Go(func() error {
		var err error
		merges, err = parseMerged(mergedPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("Parsed taxdump files",
		"records", humanize.Comma(int64(len(records))),
		"merged_ids", humanize.Comma(int64(len(merges))),
	)

	cache, err := taxa.Assemble(records, merges, interesting)
	if err != nil {
		return nil, err
	}

	slog.Info("Assembled taxon cache",
		"records", humanize.Comma(int64(cache.Len())),
		"merged_ids", humanize.Comma(int64(len(cache.Merged))),
		"fingerprint", cache.Meta.Fingerprint,
	)
	return cache, nil
}
