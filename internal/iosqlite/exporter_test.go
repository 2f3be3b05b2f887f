package iosqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/mibig-secmet/mibigtaxa/internal/iosqlite"
	"github.com/mibig-secmet/mibigtaxa/pkg/config"
	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func buildCache(t *testing.T) *taxa.Cache {
	t.Helper()
	records := map[int]taxa.Record{
		9605: {TaxonID: 9605, ParentID: 0, Name: "Homo", Rank: "genus"},
		9606: {
			TaxonID: 9606, ParentID: 9605,
			Name: "Homo sapiens", Rank: "species",
		},
	}
	merges := []taxa.MergedPair{{OldID: 499551, NewID: 9606}}

	cache, err := taxa.Assemble(records, merges, []int{9606})
	require.NoError(t, err)
	return cache
}

func quietConfig() *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptWithProgress(false)})
	return cfg
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxa.db")
	cache := buildCache(t)

	e := iosqlite.NewExporter(quietConfig())
	require.NoError(t, e.Export(context.Background(), cache, path))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT count(*) FROM taxa").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, cache.Len(), count)

	var name, lineage string
	err = db.QueryRow(
		"SELECT name, lineage FROM taxa WHERE tax_id = 9606",
	).Scan(&name, &lineage)
	require.NoError(t, err)
	assert.Equal(t, "Homo sapiens", name)
	assert.Equal(t, "Homo", lineage)

	var newID int
	err = db.QueryRow(
		"SELECT new_id FROM merged_ids WHERE old_id = 499551",
	).Scan(&newID)
	require.NoError(t, err)
	assert.Equal(t, 9606, newID)
}

func TestExportReplacesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxa.db")
	e := iosqlite.NewExporter(quietConfig())

	require.NoError(t, e.Export(context.Background(), buildCache(t), path))

	small, err := taxa.Assemble(
		map[int]taxa.Record{
			1: {TaxonID: 1, ParentID: 1, Name: "root", Rank: "no rank"},
		},
		nil, []int{1},
	)
	require.NoError(t, err)
	require.NoError(t, e.Export(context.Background(), small, path))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT count(*) FROM taxa").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExportBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "taxa.db")

	e := iosqlite.NewExporter(quietConfig())
	err := e.Export(context.Background(), buildCache(t), path)
	assert.Error(t, err)
}
