// Package iosqlite mirrors a built taxon cache into a SQLite database
// so curators can inspect it with plain SQL. The export is one-way;
// loading always goes through the JSON cache file.
package iosqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/mibig-secmet/mibigtaxa/pkg/config"
	"github.com/mibig-secmet/mibigtaxa/pkg/lifecycle"
	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE taxa (
	tax_id INTEGER PRIMARY KEY,
	parent_id INTEGER NOT NULL,
	rank TEXT NOT NULL,
	name TEXT NOT NULL,
	lineage TEXT NOT NULL
);
CREATE TABLE merged_ids (
	old_id INTEGER PRIMARY KEY,
	new_id INTEGER NOT NULL REFERENCES taxa (tax_id)
);
`

type exporter struct {
	cfg *config.Config
}

// NewExporter creates a SQLite exporter configured by cfg.
func NewExporter(cfg *config.Config) lifecycle.Exporter {
	return &exporter{cfg: cfg}
}

// Export writes the cache into a fresh SQLite database at path. A
// previous export at the same path is replaced.
func (e *exporter) Export(
	ctx context.Context,
	cache *taxa.Cache,
	path string,
) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return ExportError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return ExportError(path, err)
	}
	defer db.Close()

	if _, err = db.ExecContext(ctx, schema); err != nil {
		return ExportError(path, err)
	}

	if err = e.insertTaxa(ctx, db, cache); err != nil {
		return ExportError(path, err)
	}
	if err = e.insertMerged(ctx, db, cache); err != nil {
		return ExportError(path, err)
	}

	slog.Info("Exported taxon cache to SQLite",
		"path", path,
		"taxa", humanize.Comma(int64(cache.Len())),
		"merged_ids", humanize.Comma(int64(len(cache.Merged))),
	)
	return nil
}

func (e *exporter) insertTaxa(
	ctx context.Context,
	db *sql.DB,
	cache *taxa.Cache,
) error {
	var bar *pb.ProgressBar
	if e.cfg.WithProgress {
		bar = pb.Full.Start(cache.Len())
		bar.Set("prefix", "Exporting taxa ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO taxa (tax_id, parent_id, rank, name, lineage) "+
			"VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, id := range slices.Sorted(maps.Keys(cache.Records)) {
		rec := cache.Records[id]
		_, err = stmt.ExecContext(ctx,
			rec.TaxonID, rec.ParentID, rec.Rank, rec.Name,
			strings.Join(rec.LineageNames, "|"),
		)
		if err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
	}

	return tx.Commit()
}

func (e *exporter) insertMerged(
	ctx context.Context,
	db *sql.DB,
	cache *taxa.Cache,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO merged_ids (old_id, new_id) VALUES (?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, old := range slices.Sorted(maps.Keys(cache.Merged)) {
		if _, err = stmt.ExecContext(ctx, old, cache.Merged[old]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
