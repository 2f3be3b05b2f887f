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
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getLineageCmd returns the lineage command.
func getLineageCmd() *cobra.Command {
	var cacheFile string
	var allowDeprecated bool

	lineageCmd := &cobra.Command{
		Use:   "lineage <taxon-id>",
		Short: "Print the ancestor lineage of a taxon",
		Long: `Print the ancestor names of a cached taxon, from the immediate
parent up to the root, pipe-delimited.

The lineage is precomputed at build time; this command never walks the
taxonomy tree.

Examples:
  mibigtaxa lineage 9606
  mibigtaxa lineage 499551 --deprecated`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLineage(args[0], cacheFile, allowDeprecated)
		},
	}

	lineageCmd.Flags().StringVarP(&cacheFile, "cache", "c", "",
		"cache file to query (default: configured cache file)")
	lineageCmd.Flags().BoolVarP(&allowDeprecated, "deprecated", "d",
		false, "resolve deprecated taxon IDs")

	return lineageCmd
}

func runLineage(arg, cacheFile string, allowDeprecated bool) error {
	id, err := parseTaxonID(arg)
	if err != nil {
		return err
	}

	cache, err := loadCache(cacheFile)
	if err != nil {
		return err
	}

	lineage, err := cache.LineageByID(id, allowDeprecated)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	fmt.Println(strings.Join(lineage, "|"))
	return nil
}
