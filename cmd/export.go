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

	"github.com/gnames/gn"
	"github.com/mibig-secmet/mibigtaxa/internal/iosqlite"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var cacheFile string

	exportCmd := &cobra.Command{
		Use:   "export <sqlite-file>",
		Short: "Export the taxon cache to a SQLite database",
		Long: `Export the taxon cache into a SQLite database with tables
'taxa' and 'merged_ids', for ad-hoc SQL inspection.

The export is one-way: lookups always read the JSON cache file, never
the SQLite mirror.

Examples:
  mibigtaxa export taxa.sqlite
  mibigtaxa export -c cache.json taxa.sqlite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], cacheFile)
		},
	}

	exportCmd.Flags().StringVarP(&cacheFile, "cache", "c", "",
		"cache file to export (default: configured cache file)")

	return exportCmd
}

func runExport(output, cacheFile string) error {
	ctx := context.Background()

	cache, err := loadCache(cacheFile)
	if err != nil {
		return err
	}

	exp := iosqlite.NewExporter(cfg)
	if err = exp.Export(ctx, cache, output); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Exported cache to <em>%s</em>", output)
	return nil
}
