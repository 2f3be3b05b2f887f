package cmd

import (
	"fmt"
	"strconv"

	"github.com/gnames/gn"
	"github.com/mibig-secmet/mibigtaxa/internal/iocache"
	"github.com/mibig-secmet/mibigtaxa/pkg/taxa"
)

// parseTaxonID converts a positional CLI argument into a taxon ID.
func parseTaxonID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		err = fmt.Errorf("'%s' is not a valid taxon ID", arg)
		gn.PrintErrorMessage(err)
		return 0, err
	}
	return id, nil
}

// loadCache reads the cache used by the query commands. An explicit
// --cache flag wins over the configured location.
func loadCache(cacheFlag string) (*taxa.Cache, error) {
	path := cacheFlag
	if path == "" {
		path = cacheFilePath()
	}

	store := iocache.NewStore()
	cache, err := store.Load(path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return nil, err
	}
	return cache, nil
}
