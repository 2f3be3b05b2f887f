/*
Copyright © 2025 The mibigtaxa authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/mibig-secmet/mibigtaxa/internal/iocache"
	"github.com/mibig-secmet/mibigtaxa/internal/iodataset"
	"github.com/mibig-secmet/mibigtaxa/internal/iotaxdump"
	"github.com/mibig-secmet/mibigtaxa/pkg/config"
	"github.com/spf13/cobra"
)

// getBuildCmd returns the build command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBuildCmd() *cobra.Command {
	var taxdump, merged, datadir, output string

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build the taxon cache from NCBI taxdump files",
		Long: `Build the taxon cache from scratch.

This command:
  1. Scans the MIBiG entry directory for referenced taxon IDs
  2. Parses the taxdump and merged-ID dump files
  3. Resolves deprecated IDs and expands the set with all ancestors
  4. Saves the assembled cache as a JSON document

The build is all-or-nothing: any unresolved taxon ID, malformed record
or redirect cycle aborts it, and every unresolved ID of a run is
reported in one message.

Examples:
  mibigtaxa build --taxdump taxdump.dmp --merged merged.dmp --datadir mibig_json
  mibigtaxa build --taxdump taxdump.dmp --merged merged.dmp --datadir mibig_json -o cache.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(taxdump, merged, datadir, output)
		},
	}

	buildCmd.Flags().StringVar(&taxdump, "taxdump", "",
		"path to the NCBI taxdump file")
	buildCmd.Flags().StringVar(&merged, "merged", "",
		"path to the NCBI merged-ID dump file")
	buildCmd.Flags().StringVar(&datadir, "datadir", "",
		"directory with MIBiG JSON entries")
	buildCmd.Flags().StringVarP(&output, "output", "o", "",
		"where to save the cache (default: configured cache file)")

	_ = buildCmd.MarkFlagRequired("taxdump")
	_ = buildCmd.MarkFlagRequired("merged")
	_ = buildCmd.MarkFlagRequired("datadir")

	return buildCmd
}

func runBuild(taxdump, merged, datadir, output string) error {
	ctx := context.Background()

	cfg.Update([]config.Option{
		config.OptBuildTaxdumpFile(taxdump),
		config.OptBuildMergedDumpFile(merged),
		config.OptBuildDataDir(datadir),
	})
	if output == "" {
		output = cacheFilePath()
	}

	scanner := iodataset.NewScanner()
	ids, err := scanner.ScanIDs(cfg.Build.DataDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Dataset references <em>%s</em> taxa",
		humanize.Comma(int64(len(ids))))

	builder := iotaxdump.NewBuilder(cfg)
	cache, err := builder.Build(
		ctx, cfg.Build.TaxdumpFile, cfg.Build.MergedDumpFile, ids,
	)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	store := iocache.NewStore()
	size, err := store.Save(cache, output)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Cached <em>%s</em> taxa with their merged IDs",
		humanize.Comma(int64(cache.Len())))
	gn.Info("Saved cache to <em>%s</em>", output)
	gn.Info("Cache size is <em>%s</em>", humanize.Bytes(uint64(size)))

	return nil
}
